package domain

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle status of a meeting instance
type MeetingStatus string

const (
	MeetingStatusDraft     MeetingStatus = "draft"
	MeetingStatusFinalized MeetingStatus = "finalized"
)

// Meeting is one filled-in occurrence of a template
type Meeting struct {
	BaseModel
	TemplateID  uuid.UUID     `gorm:"type:uuid;not null;index:idx_meetings_template_id" json:"template_id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle    string        `gorm:"type:varchar(255)" json:"subtitle"`
	Status      MeetingStatus `gorm:"type:varchar(50);not null;default:'draft'" json:"status"`
	MeetingDate *time.Time    `gorm:"type:timestamp;index:idx_meetings_meeting_date" json:"meeting_date"`
	Template    Template      `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template,omitempty"`
	Values      []FieldValue  `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
	Attachments []Attachment  `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// FieldValue is the stored value of one field for one meeting.
// Exactly one of the value columns is populated according to the owning
// field's type; the unique index is the system's at-most-one-row invariant.
type FieldValue struct {
	BaseModel
	MeetingID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_field_values_meeting_field,priority:1" json:"meeting_id"`
	FieldID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_field_values_meeting_field,priority:2" json:"field_id"`
	TextValue    *string       `gorm:"type:text" json:"text_value"`
	NumberValue  *float64      `json:"number_value"`
	BooleanValue *bool         `json:"boolean_value"`
	DateValue    *time.Time    `gorm:"type:timestamp" json:"date_value"`
	Meeting      Meeting       `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
	Field        TemplateField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"field,omitempty"`
}

// TableName specifies the table name for FieldValue
func (FieldValue) TableName() string {
	return "field_values"
}

// HasValue reports whether any scalar column is populated
func (v *FieldValue) HasValue() bool {
	return v.TextValue != nil || v.NumberValue != nil || v.BooleanValue != nil || v.DateValue != nil
}
