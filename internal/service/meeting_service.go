package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/util"
)

// MeetingService defines the interface for meeting business logic
type MeetingService interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	ListMeetings(ctx context.Context, templateID *uuid.UUID) ([]*dto.MeetingResponse, error)
	SaveMeeting(ctx context.Context, id uuid.UUID, req *dto.SaveMeetingRequest) (*dto.MeetingResponse, error)
	DuplicateMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
}

// meetingServiceImpl is the implementation of MeetingService
type meetingServiceImpl struct {
	meetingRepo  repository.MeetingRepository
	templateRepo repository.TemplateRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewMeetingService creates a new instance of MeetingService
func NewMeetingService(meetingRepo repository.MeetingRepository, templateRepo repository.TemplateRepository, m *metrics.Metrics, logger *zap.Logger) MeetingService {
	return &meetingServiceImpl{
		meetingRepo:  meetingRepo,
		templateRepo: templateRepo,
		metrics:      m,
		logger:       logger,
	}
}

// CreateMeeting creates a meeting instance under a template
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	if _, err := s.templateRepo.FindByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Template not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}

	now := time.Now().UTC()
	meeting := &domain.Meeting{
		TemplateID:  req.TemplateID,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Status:      domain.MeetingStatusDraft,
		MeetingDate: &now,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create meeting", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementMeetingCreated()
	}
	return s.toMeetingResponse(meeting), nil
}

// GetMeeting retrieves one meeting with its values and attachments
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}
	return s.toMeetingResponse(meeting), nil
}

// ListMeetings retrieves meetings, optionally filtered by template
func (s *meetingServiceImpl) ListMeetings(ctx context.Context, templateID *uuid.UUID) ([]*dto.MeetingResponse, error) {
	meetings, err := s.meetingRepo.FindAll(ctx, templateID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meetings", err.Error())
	}
	responses := make([]*dto.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = s.toMeetingResponse(m)
	}
	return responses, nil
}

// SaveMeeting upserts meeting metadata and field values. Text values
// pass through the rich-text sanitizing boundary before storage; the
// (meeting, field) upsert is the at-most-one-row invariant.
func (s *meetingServiceImpl) SaveMeeting(ctx context.Context, id uuid.UUID, req *dto.SaveMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	meeting.Title = req.Title
	meeting.Subtitle = req.Subtitle
	if req.Status != "" {
		meeting.Status = domain.MeetingStatus(req.Status)
	}
	if req.MeetingDate != nil {
		meeting.MeetingDate = req.MeetingDate
	}

	values := make([]domain.FieldValue, 0, len(req.Values))
	for _, v := range req.Values {
		value := domain.FieldValue{
			MeetingID:    id,
			FieldID:      v.FieldID,
			NumberValue:  v.NumberValue,
			BooleanValue: v.BooleanValue,
			DateValue:    v.DateValue,
		}
		if v.TextValue != nil {
			safe := util.SanitizeRichText(*v.TextValue)
			value.TextValue = &safe
		}
		values = append(values, value)
	}

	if err := s.meetingRepo.SaveWithValues(ctx, meeting, values); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save meeting", err.Error())
	}

	saved, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload meeting", err.Error())
	}
	return s.toMeetingResponse(saved), nil
}

// DuplicateMeeting deep-copies a meeting and all its values into a new
// instance with fresh ids. Attachments are not copied.
func (s *meetingServiceImpl) DuplicateMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	original, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	now := time.Now().UTC()
	copyMeeting := &domain.Meeting{
		TemplateID:  original.TemplateID,
		Title:       "Copy of " + original.Title,
		Subtitle:    original.Subtitle,
		Status:      domain.MeetingStatusDraft,
		MeetingDate: &now,
	}

	values := make([]domain.FieldValue, 0, len(original.Values))
	for _, v := range original.Values {
		values = append(values, domain.FieldValue{
			FieldID:      v.FieldID,
			TextValue:    v.TextValue,
			NumberValue:  v.NumberValue,
			BooleanValue: v.BooleanValue,
			DateValue:    v.DateValue,
		})
	}

	if err := s.meetingRepo.CreateWithValues(ctx, copyMeeting, values); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to duplicate meeting", err.Error())
	}

	s.logger.Info("Meeting duplicated",
		zap.String("source_id", original.ID.String()),
		zap.String("copy_id", copyMeeting.ID.String()),
		zap.Int("values_copied", len(values)),
	)

	created, err := s.meetingRepo.FindByID(ctx, copyMeeting.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload meeting", err.Error())
	}
	return s.toMeetingResponse(created), nil
}

// DeleteMeeting removes a meeting with its values and attachment rows.
// On-disk files are left to the cleanup job.
func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if _, err := s.meetingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Meeting not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete meeting", err.Error())
	}
	return nil
}

// toMeetingResponse converts a domain meeting to its response DTO
func (s *meetingServiceImpl) toMeetingResponse(m *domain.Meeting) *dto.MeetingResponse {
	resp := &dto.MeetingResponse{
		MeetingID:   m.ID,
		TemplateID:  m.TemplateID,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Status:      string(m.Status),
		MeetingDate: m.MeetingDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Template.ID != uuid.Nil {
		resp.TemplateTitle = m.Template.Title
	}
	for _, v := range m.Values {
		resp.Values = append(resp.Values, dto.FieldValueResponse{
			FieldID:      v.FieldID,
			TextValue:    v.TextValue,
			NumberValue:  v.NumberValue,
			BooleanValue: v.BooleanValue,
			DateValue:    v.DateValue,
		})
	}
	for _, a := range m.Attachments {
		resp.Attachments = append(resp.Attachments, dto.AttachmentResponse{
			AttachmentID: a.ID,
			MeetingID:    a.MeetingID,
			OriginalName: a.OriginalName,
			StoragePath:  a.StoragePath,
			MimeType:     a.MimeType,
			SizeBytes:    a.SizeBytes,
			CreatedAt:    a.CreatedAt,
		})
	}
	return resp
}
