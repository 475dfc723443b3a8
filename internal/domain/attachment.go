package domain

import "github.com/google/uuid"

// Attachment is a file uploaded against a meeting. StoragePath is the
// path relative to the attachments root, resolved once at upload time
// and never recomputed, so renaming a template or meeting afterwards
// does not orphan the file.
type Attachment struct {
	BaseModel
	MeetingID    uuid.UUID `gorm:"type:uuid;not null;index:idx_attachments_meeting_id" json:"meeting_id"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"original_name"`
	StoragePath  string    `gorm:"type:text;not null" json:"storage_path"`
	MimeType     string    `gorm:"type:varchar(100);not null" json:"mime_type"`
	SizeBytes    int64     `gorm:"not null" json:"size_bytes"`
	Meeting      Meeting   `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
