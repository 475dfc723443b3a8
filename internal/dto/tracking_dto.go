package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTrackingListRequest represents the request to create a tracking list.
// PrincipalIDs not present in FieldIDs are still tracked (with order -1)
// so principal fields are never silently dropped.
type CreateTrackingListRequest struct {
	Name         string            `json:"name" binding:"required,max=255"`
	TemplateID   uuid.UUID         `json:"templateId" binding:"required"`
	FieldIDs     []uuid.UUID       `json:"fieldIds"`
	PrincipalIDs []uuid.UUID       `json:"principalIds" binding:"omitempty,max=2"`
	DisplayModes map[string]string `json:"displayModes,omitempty"`
	Aliases      map[string]string `json:"aliases,omitempty"`
}

// UpdateTrackingListRequest represents a full configuration save.
// AllFieldsOrdered defines the tracked set and its order; VisibleFields
// the visible subset. When AllFieldsOrdered is absent, FieldIDs is the
// order, doubling as the visible set unless VisibleFields is also sent
// (legacy callers sent only what was visible).
// Version must match the stored list version or the save is rejected.
type UpdateTrackingListRequest struct {
	Name             string            `json:"name" binding:"required,max=255"`
	Version          int64             `json:"version" binding:"required"`
	AllFieldsOrdered []uuid.UUID       `json:"allFieldsOrdered,omitempty"`
	VisibleFields    *[]uuid.UUID      `json:"visibleFields,omitempty"`
	FieldIDs         []uuid.UUID       `json:"fieldIds,omitempty"`
	PrincipalIDs     []uuid.UUID       `json:"principalIds" binding:"omitempty,max=2"`
	DisplayModes     map[string]string `json:"displayModes,omitempty"`
	Aliases          map[string]string `json:"aliases,omitempty"`
}

// TrackingFieldResponse represents one configured field of a list
type TrackingFieldResponse struct {
	FieldID     uuid.UUID `json:"fieldId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Order       int       `json:"order"`
	Principal   bool      `json:"principal"`
	Visible     bool      `json:"visible"`
	DisplayMode string    `json:"displayMode"`
	Alias       *string   `json:"alias,omitempty"`
}

// TrackingListSummary represents a list in the overview listing
type TrackingListSummary struct {
	ListID          uuid.UUID `json:"listId"`
	Name            string    `json:"name"`
	TemplateID      uuid.UUID `json:"templateId"`
	TemplateTitle   string    `json:"templateTitle"`
	Version         int64     `json:"version"`
	PrincipalFields []string  `json:"principalFields"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CellKind tags how a resolved cell should be rendered
type CellKind string

const (
	CellKindEmpty   CellKind = "empty"
	CellKindFilled  CellKind = "filled"
	CellKindText    CellKind = "text"
	CellKindRich    CellKind = "rich"
	CellKindNumber  CellKind = "number"
	CellKindBoolean CellKind = "boolean"
	CellKindDate    CellKind = "date"
	CellKindTable   CellKind = "table"
	CellKindError   CellKind = "error"
)

// TrackingCell is one resolved (meeting, field) cell
type TrackingCell struct {
	Kind    CellKind            `json:"kind"`
	Filled  bool                `json:"filled"`
	Text    string              `json:"text,omitempty"`
	Number  *float64            `json:"number,omitempty"`
	Boolean *bool               `json:"boolean,omitempty"`
	Date    *time.Time          `json:"date,omitempty"`
	Table   []map[string]string `json:"table,omitempty"`
	Columns []string            `json:"columns,omitempty"`
}

// TrackingRow is one meeting of the bound template with its cells keyed
// by field id
type TrackingRow struct {
	MeetingID   uuid.UUID               `json:"meetingId"`
	Title       string                  `json:"title"`
	MeetingDate *time.Time              `json:"meetingDate,omitempty"`
	Cells       map[string]TrackingCell `json:"cells"`
}

// TrackingEntryResponse represents one follow-up note
type TrackingEntryResponse struct {
	EntryID     uuid.UUID  `json:"entryId"`
	MeetingID   *uuid.UUID `json:"meetingId,omitempty"`
	Content     string     `json:"content"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TrackingViewResponse is the resolved pivot view of a list
type TrackingViewResponse struct {
	ListID        uuid.UUID                          `json:"listId"`
	Name          string                             `json:"name"`
	TemplateID    uuid.UUID                          `json:"templateId"`
	TemplateTitle string                             `json:"templateTitle"`
	Version       int64                              `json:"version"`
	Fields        []TrackingFieldResponse            `json:"fields"`
	Rows          []TrackingRow                      `json:"rows"`
	Entries       map[string][]TrackingEntryResponse `json:"entries"`
	GlobalEntries []TrackingEntryResponse            `json:"globalEntries"`
}

// AddEntryRequest represents the request to add a follow-up note
type AddEntryRequest struct {
	MeetingID *uuid.UUID `json:"meetingId,omitempty"`
	Content   string     `json:"content" binding:"required"`
}

// UpdateEntryRequest represents a partial entry update: either the
// content is rewritten or the completed flag is toggled
type UpdateEntryRequest struct {
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ReorderEntriesRequest carries entry ids in their new order
type ReorderEntriesRequest struct {
	EntryIDs []uuid.UUID `json:"entryIds" binding:"required"`
}
