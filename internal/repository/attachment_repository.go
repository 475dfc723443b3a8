package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
)

// AttachmentRepository defines the interface for attachment metadata access
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Attachment, error)
	FindAllPaths(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// attachmentRepositoryImpl is the GORM implementation of AttachmentRepository
type attachmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new instance of AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepositoryImpl{db: db}
}

// Create creates a new attachment row
func (r *attachmentRepositoryImpl) Create(ctx context.Context, attachment *domain.Attachment) error {
	if err := r.db.WithContext(ctx).Create(attachment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an attachment by its ID
func (r *attachmentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	if err := r.db.WithContext(ctx).First(&attachment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// FindByMeetingID finds all attachments of a meeting, newest first
func (r *attachmentRepositoryImpl) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Attachment, error) {
	var attachments []*domain.Attachment
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// FindAllPaths returns every stored relative path, for the orphan
// cleanup job
func (r *attachmentRepositoryImpl) FindAllPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.WithContext(ctx).
		Model(&domain.Attachment{}).
		Pluck("storage_path", &paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// Delete removes an attachment row by ID
func (r *attachmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Attachment{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
