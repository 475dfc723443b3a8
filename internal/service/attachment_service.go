package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/storage"
)

// MaxAttachmentSize is the largest accepted upload in bytes.
const MaxAttachmentSize = 25 << 20

// AttachmentService defines the interface for attachment business logic
type AttachmentService interface {
	UploadAttachment(ctx context.Context, meetingID uuid.UUID, originalName, mimeType string, size int64, r io.Reader) (*dto.AttachmentResponse, error)
	GetAttachment(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, meetingID uuid.UUID) ([]*dto.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	meetingRepo    repository.MeetingRepository
	store          storage.Store
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(attachmentRepo repository.AttachmentRepository, meetingRepo repository.MeetingRepository, store storage.Store, logger *zap.Logger) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		meetingRepo:    meetingRepo,
		store:          store,
		logger:         logger,
	}
}

// UploadAttachment stores the file on disk and records its metadata.
// The storage path is resolved from the titles current at upload time
// and never recomputed afterwards.
func (s *attachmentServiceImpl) UploadAttachment(ctx context.Context, meetingID uuid.UUID, originalName, mimeType string, size int64, r io.Reader) (*dto.AttachmentResponse, error) {
	if originalName == "" {
		return nil, response.NewValidationError("File name is required", "")
	}
	if size > MaxAttachmentSize {
		return nil, response.NewValidationError("File exceeds the maximum allowed size", "")
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	relPath, err := s.store.Save(meeting.Template.Title, meeting.Title, originalName, io.LimitReader(r, MaxAttachmentSize))
	if err != nil {
		return nil, response.NewStorageError("Failed to store file", err.Error())
	}

	attachment := &domain.Attachment{
		MeetingID:    meetingID,
		OriginalName: originalName,
		StoragePath:  relPath,
		MimeType:     mimeType,
		SizeBytes:    size,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// roll back the file so the row and the disk stay consistent
		if rmErr := s.store.Remove(relPath); rmErr != nil {
			s.logger.Warn("Failed to remove file after metadata error",
				zap.String("path", relPath), zap.Error(rmErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save attachment metadata", err.Error())
	}

	s.logger.Info("Attachment uploaded",
		zap.String("attachment_id", attachment.ID.String()),
		zap.String("meeting_id", meetingID.String()),
		zap.String("path", relPath),
		zap.Int64("size_bytes", size),
	)
	return toAttachmentResponse(attachment), nil
}

// GetAttachment returns the attachment row for download handling
func (s *attachmentServiceImpl) GetAttachment(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachment", err.Error())
	}
	return attachment, nil
}

// ListAttachments lists a meeting's attachments, newest first
func (s *attachmentServiceImpl) ListAttachments(ctx context.Context, meetingID uuid.UUID) ([]*dto.AttachmentResponse, error) {
	attachments, err := s.attachmentRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachments", err.Error())
	}
	responses := make([]*dto.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = toAttachmentResponse(a)
	}
	return responses, nil
}

// DeleteAttachment removes the row and then the file. A file removal
// failure is logged but does not fail the delete; the cleanup job
// collects the orphan later.
func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Attachment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachment", err.Error())
	}

	if err := s.attachmentRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete attachment", err.Error())
	}

	if err := s.store.Remove(attachment.StoragePath); err != nil {
		s.logger.Warn("Failed to remove attachment file",
			zap.String("attachment_id", id.String()),
			zap.String("path", attachment.StoragePath),
			zap.Error(err),
		)
	}
	return nil
}

func toAttachmentResponse(a *domain.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		AttachmentID: a.ID,
		MeetingID:    a.MeetingID,
		OriginalName: a.OriginalName,
		StoragePath:  a.StoragePath,
		MimeType:     a.MimeType,
		SizeBytes:    a.SizeBytes,
		CreatedAt:    a.CreatedAt,
	}
}
