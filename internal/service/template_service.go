package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/response"
)

// TemplateService defines the interface for template business logic
type TemplateService interface {
	CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]*dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// templateServiceImpl is the implementation of TemplateService
type templateServiceImpl struct {
	templateRepo repository.TemplateRepository
	metrics      *metrics.Metrics
}

// NewTemplateService creates a new instance of TemplateService
func NewTemplateService(templateRepo repository.TemplateRepository, m *metrics.Metrics) TemplateService {
	return &templateServiceImpl{templateRepo: templateRepo, metrics: m}
}

// CreateTemplate creates a template with its field list. Caller-supplied
// field ids are ignored: new fields always get fresh ids.
func (s *templateServiceImpl) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if req.Title == "" {
		return nil, response.NewValidationError("Title is required", "")
	}
	if err := validateFieldRequests(req.Fields); err != nil {
		return nil, err
	}

	template := &domain.Template{
		Title:       req.Title,
		Description: req.Description,
	}
	for i, f := range req.Fields {
		template.Fields = append(template.Fields, domain.TemplateField{
			Name:     f.Name,
			Type:     domain.FieldType(f.Type),
			Order:    i,
			Required: f.Required,
			Options:  f.Options,
		})
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create template", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTemplateCreated()
	}
	return s.toTemplateResponse(template), nil
}

// GetTemplate retrieves one template with its fields
func (s *templateServiceImpl) GetTemplate(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Template not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}
	return s.toTemplateResponse(template), nil
}

// ListTemplates retrieves all templates, newest first
func (s *templateServiceImpl) ListTemplates(ctx context.Context) ([]*dto.TemplateResponse, error) {
	templates, err := s.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch templates", err.Error())
	}
	responses := make([]*dto.TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = s.toTemplateResponse(t)
	}
	return responses, nil
}

// UpdateTemplate reconciles the incoming field list against the stored
// one: known ids are updated in place (so reordering preserves stored
// values), id-less entries are inserted new, and ids missing from the
// incoming list are deleted together with their values. Orders are
// re-sequenced to the array index on every save. A field whose type
// changed keeps its stored values untouched until overwritten.
func (s *templateServiceImpl) UpdateTemplate(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if req.Title == "" {
		return nil, response.NewValidationError("Title is required", "")
	}
	if err := validateFieldRequests(req.Fields); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Template not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}

	currentIDs := make(map[uuid.UUID]bool, len(template.Fields))
	for _, f := range template.Fields {
		currentIDs[f.ID] = true
	}
	incomingIDs := make(map[uuid.UUID]bool)

	fields := make([]domain.TemplateField, 0, len(req.Fields))
	for i, f := range req.Fields {
		field := domain.TemplateField{
			TemplateID: id,
			Name:       f.Name,
			Type:       domain.FieldType(f.Type),
			Order:      i,
			Required:   f.Required,
			Options:    f.Options,
		}
		if f.ID != nil && currentIDs[*f.ID] {
			field.ID = *f.ID
			incomingIDs[*f.ID] = true
		}
		fields = append(fields, field)
	}

	var deleteIDs []uuid.UUID
	for fid := range currentIDs {
		if !incomingIDs[fid] {
			deleteIDs = append(deleteIDs, fid)
		}
	}

	template.Title = req.Title
	template.Description = req.Description
	if err := s.templateRepo.SaveWithFields(ctx, template, fields, deleteIDs); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update template", err.Error())
	}

	updated, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload template", err.Error())
	}
	return s.toTemplateResponse(updated), nil
}

// DeleteTemplate removes a template; meetings, values, attachments and
// tracking configuration cascade with it
func (s *templateServiceImpl) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.templateRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Template not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete template", err.Error())
	}
	return nil
}

// validateFieldRequests checks field types and table options up front,
// at the catalog boundary
func validateFieldRequests(fields []dto.FieldRequest) error {
	for i, f := range fields {
		fieldType := domain.FieldType(f.Type)
		if !domain.IsValidFieldType(fieldType) {
			return response.NewValidationError(fmt.Sprintf("Invalid field type: %s", f.Type), "")
		}
		if f.Name == "" {
			return response.NewValidationError(fmt.Sprintf("Field %d has no name", i), "")
		}
		if fieldType == domain.FieldTypeTable {
			probe := domain.TemplateField{Type: fieldType, Options: f.Options}
			if _, err := probe.ParseOptions(); err != nil {
				return response.NewValidationError(fmt.Sprintf("Field %q has malformed table options", f.Name), err.Error())
			}
		}
	}
	return nil
}

// toTemplateResponse converts a domain template to its response DTO
func (s *templateServiceImpl) toTemplateResponse(t *domain.Template) *dto.TemplateResponse {
	resp := &dto.TemplateResponse{
		TemplateID:  t.ID,
		Title:       t.Title,
		Description: t.Description,
		Fields:      make([]dto.FieldResponse, len(t.Fields)),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for i, f := range t.Fields {
		resp.Fields[i] = dto.FieldResponse{
			FieldID:  f.ID,
			Name:     f.Name,
			Type:     string(f.Type),
			Order:    f.Order,
			Required: f.Required,
			Options:  f.Options,
		}
	}
	return resp
}
