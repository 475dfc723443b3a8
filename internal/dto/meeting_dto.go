package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	TemplateID uuid.UUID `json:"templateId" binding:"required"`
	Title      string    `json:"title" binding:"required,max=255"`
	Subtitle   string    `json:"subtitle" binding:"max=255"`
}

// FieldValueRequest carries one field value in a meeting save. Exactly
// one of the value members should be set, matching the field's type.
type FieldValueRequest struct {
	FieldID      uuid.UUID  `json:"fieldId" binding:"required"`
	TextValue    *string    `json:"textValue,omitempty"`
	NumberValue  *float64   `json:"numberValue,omitempty"`
	BooleanValue *bool      `json:"booleanValue,omitempty"`
	DateValue    *time.Time `json:"dateValue,omitempty"`
}

// SaveMeetingRequest represents the request to save a meeting's
// metadata and field values
type SaveMeetingRequest struct {
	Title       string              `json:"title" binding:"required,max=255"`
	Subtitle    string              `json:"subtitle" binding:"max=255"`
	Status      string              `json:"status" binding:"omitempty,oneof=draft finalized"`
	MeetingDate *time.Time          `json:"meetingDate,omitempty"`
	Values      []FieldValueRequest `json:"values"`
}

// FieldValueResponse represents one stored field value
type FieldValueResponse struct {
	FieldID      uuid.UUID  `json:"fieldId"`
	TextValue    *string    `json:"textValue,omitempty"`
	NumberValue  *float64   `json:"numberValue,omitempty"`
	BooleanValue *bool      `json:"booleanValue,omitempty"`
	DateValue    *time.Time `json:"dateValue,omitempty"`
}

// MeetingResponse represents the meeting response
type MeetingResponse struct {
	MeetingID     uuid.UUID            `json:"meetingId"`
	TemplateID    uuid.UUID            `json:"templateId"`
	TemplateTitle string               `json:"templateTitle,omitempty"`
	Title         string               `json:"title"`
	Subtitle      string               `json:"subtitle"`
	Status        string               `json:"status"`
	MeetingDate   *time.Time           `json:"meetingDate,omitempty"`
	Values        []FieldValueResponse `json:"values,omitempty"`
	Attachments   []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
