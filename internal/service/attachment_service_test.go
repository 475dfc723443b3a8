package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/storage"
)

func meetingFixture(meetingID uuid.UUID) *MockMeetingRepository {
	return &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return &domain.Meeting{
				BaseModel:  domain.BaseModel{ID: meetingID},
				Title:      "Annual Review",
				TemplateID: uuid.New(),
				Template:   domain.Template{Title: "Board Meeting"},
			}, nil
		},
	}
}

func TestAttachmentService_UploadAttachment(t *testing.T) {
	meetingID := uuid.New()
	store := storage.NewMockStore()
	var created *domain.Attachment
	attachmentRepo := &MockAttachmentRepository{
		CreateFunc: func(ctx context.Context, a *domain.Attachment) error {
			a.ID = uuid.New()
			created = a
			return nil
		},
	}
	svc := NewAttachmentService(attachmentRepo, meetingFixture(meetingID), store, zap.NewNop())

	content := "file content"
	resp, err := svc.UploadAttachment(context.Background(), meetingID, "Agenda.PDF", "application/pdf", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("UploadAttachment failed: %v", err)
	}

	if created.StoragePath == "" {
		t.Fatal("storage path not recorded")
	}
	if !store.Exists(created.StoragePath) {
		t.Errorf("file not stored at %q", created.StoragePath)
	}
	if resp.OriginalName != "Agenda.PDF" {
		t.Errorf("original name must keep its case, got %q", resp.OriginalName)
	}
	// path segments come from the sanitized titles
	if !strings.HasPrefix(created.StoragePath, "board_meeting/annual_review/") {
		t.Errorf("unexpected storage path %q", created.StoragePath)
	}
}

func TestAttachmentService_UploadAttachment_Validation(t *testing.T) {
	svc := NewAttachmentService(&MockAttachmentRepository{}, &MockMeetingRepository{}, storage.NewMockStore(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.UploadAttachment(ctx, uuid.New(), "", "text/plain", 10, strings.NewReader("x"))
	assertAppErrorCode(t, err, response.ErrCodeValidation)

	_, err = svc.UploadAttachment(ctx, uuid.New(), "big.bin", "application/octet-stream", MaxAttachmentSize+1, strings.NewReader("x"))
	assertAppErrorCode(t, err, response.ErrCodeValidation)

	// unknown meeting
	_, err = svc.UploadAttachment(ctx, uuid.New(), "a.txt", "text/plain", 1, strings.NewReader("x"))
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestAttachmentService_UploadAttachment_RollsBackFileOnMetadataError(t *testing.T) {
	meetingID := uuid.New()
	store := storage.NewMockStore()
	attachmentRepo := &MockAttachmentRepository{
		CreateFunc: func(ctx context.Context, a *domain.Attachment) error {
			return errors.New("constraint violation")
		},
	}
	svc := NewAttachmentService(attachmentRepo, meetingFixture(meetingID), store, zap.NewNop())

	_, err := svc.UploadAttachment(context.Background(), meetingID, "a.txt", "text/plain", 1, strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.Files) != 0 {
		t.Errorf("stored file must be rolled back, found %d files", len(store.Files))
	}
}

func TestAttachmentService_DeleteAttachment_FileRemovalIsBestEffort(t *testing.T) {
	attachmentID := uuid.New()
	store := storage.NewMockStore()
	store.RemoveFunc = func(relPath string) error {
		return errors.New("disk detached")
	}

	rowDeleted := false
	attachmentRepo := &MockAttachmentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
			return &domain.Attachment{
				BaseModel:   domain.BaseModel{ID: attachmentID},
				StoragePath: "t/m/a.txt",
			}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			rowDeleted = true
			return nil
		},
	}
	svc := NewAttachmentService(attachmentRepo, &MockMeetingRepository{}, store, zap.NewNop())

	// a failing file removal leaves an orphan for the cleanup job, not an error
	if err := svc.DeleteAttachment(context.Background(), attachmentID); err != nil {
		t.Fatalf("DeleteAttachment failed: %v", err)
	}
	if !rowDeleted {
		t.Error("metadata row must be deleted first")
	}
}
