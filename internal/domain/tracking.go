package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisplayMode is the per-field rendering choice in a tracking list
type DisplayMode string

const (
	// DisplayModeContent renders the typed value of the cell
	DisplayModeContent DisplayMode = "content"
	// DisplayModeFilled renders only whether any value is present
	DisplayModeFilled DisplayMode = "filled"
)

// MaxPrincipalFields is the cap on highlighted fields per tracking list
const MaxPrincipalFields = 2

// TrackingList is a saved cross-meeting pivot configuration over one
// template's fields. Version is an optimistic counter: every
// configuration save increments it, and saves carrying a stale version
// are rejected instead of silently clobbering each other.
type TrackingList struct {
	BaseModel
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	TemplateID uuid.UUID       `gorm:"type:uuid;not null;index:idx_tracking_lists_template_id" json:"template_id"`
	Version    int64           `gorm:"type:bigint;not null;default:1" json:"version"`
	Template   Template        `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template,omitempty"`
	Fields     []TrackingField `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
	Entries    []TrackingEntry `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

// TableName specifies the table name for TrackingList
func (TrackingList) TableName() string {
	return "tracking_lists"
}

// TrackingField is the per-list configuration of one template field.
// A field can be tracked and ordered but hidden; principal fields that
// the caller leaves out of the ordered list keep order -1 so they are
// never silently dropped.
type TrackingField struct {
	ListID      uuid.UUID     `gorm:"type:uuid;not null;primaryKey" json:"list_id"`
	FieldID     uuid.UUID     `gorm:"type:uuid;not null;primaryKey" json:"field_id"`
	Order       int           `gorm:"column:display_order;type:int;not null;default:0" json:"order"`
	Principal   bool          `gorm:"type:boolean;not null;default:false" json:"principal"`
	Visible     bool          `gorm:"type:boolean;not null;default:true" json:"visible"`
	DisplayMode DisplayMode   `gorm:"type:varchar(20);not null;default:'content'" json:"display_mode"`
	Alias       *string       `gorm:"type:varchar(255)" json:"alias"`
	List        TrackingList  `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"list,omitempty"`
	Field       TemplateField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"field,omitempty"`
}

// TableName specifies the table name for TrackingField
func (TrackingField) TableName() string {
	return "tracking_fields"
}

// TrackingEntry is a completable follow-up note on a tracking list,
// scoped either to one meeting or, with a nil MeetingID, to the list
// itself. Order is a manually maintained sequence per scope.
type TrackingEntry struct {
	BaseModel
	ListID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_tracking_entries_list_id" json:"list_id"`
	MeetingID   *uuid.UUID   `gorm:"type:uuid;index:idx_tracking_entries_meeting_id" json:"meeting_id"`
	Content     string       `gorm:"type:text;not null" json:"content"`
	Completed   bool         `gorm:"type:boolean;not null;default:false" json:"completed"`
	CompletedAt *time.Time   `gorm:"type:timestamp" json:"completed_at"`
	Order       int          `gorm:"column:display_order;type:int;not null;default:0" json:"order"`
	List        TrackingList `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"list,omitempty"`
}

// TableName specifies the table name for TrackingEntry
func (TrackingEntry) TableName() string {
	return "tracking_entries"
}
