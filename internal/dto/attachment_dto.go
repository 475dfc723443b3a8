package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentResponse represents uploaded file metadata
type AttachmentResponse struct {
	AttachmentID uuid.UUID `json:"attachmentId"`
	MeetingID    uuid.UUID `json:"meetingId"`
	OriginalName string    `json:"originalName"`
	StoragePath  string    `json:"storagePath"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BackupResponse represents one point-in-time database backup
type BackupResponse struct {
	Name      string    `json:"name"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}
