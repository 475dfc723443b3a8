package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/response"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Errorf("expected error code %s, got %s", code, appErr.Code)
	}
}

func TestTemplateService_CreateTemplate_Validation(t *testing.T) {
	svc := NewTemplateService(&MockTemplateRepository{}, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.CreateTemplateRequest
	}{
		{
			name: "empty title",
			req:  &dto.CreateTemplateRequest{Title: ""},
		},
		{
			name: "unknown field type",
			req: &dto.CreateTemplateRequest{
				Title:  "T",
				Fields: []dto.FieldRequest{{Name: "F", Type: "dropdown"}},
			},
		},
		{
			name: "nameless field",
			req: &dto.CreateTemplateRequest{
				Title:  "T",
				Fields: []dto.FieldRequest{{Name: "", Type: "short_text"}},
			},
		},
		{
			name: "malformed table options",
			req: &dto.CreateTemplateRequest{
				Title: "T",
				Fields: []dto.FieldRequest{{
					Name:    "Grid",
					Type:    "table",
					Options: datatypes.JSON(`{"columns": "not-an-array"`),
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTemplate(ctx, tt.req)
			assertAppErrorCode(t, err, response.ErrCodeValidation)
		})
	}
}

func TestTemplateService_CreateTemplate_AssignsOrders(t *testing.T) {
	var created *domain.Template
	repo := &MockTemplateRepository{
		CreateFunc: func(ctx context.Context, template *domain.Template) error {
			created = template
			return nil
		},
	}
	svc := NewTemplateService(repo, nil)

	_, err := svc.CreateTemplate(context.Background(), &dto.CreateTemplateRequest{
		Title: "Standup",
		Fields: []dto.FieldRequest{
			{Name: "Yesterday", Type: "long_text"},
			{Name: "Today", Type: "long_text"},
			{Name: "Blockers", Type: "short_text"},
		},
	})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	if created == nil {
		t.Fatal("repository never called")
	}
	for i, f := range created.Fields {
		if f.Order != i {
			t.Errorf("field %d: expected order %d, got %d", i, i, f.Order)
		}
	}
}

func TestTemplateService_UpdateTemplate_ReconcilesFields(t *testing.T) {
	templateID := uuid.New()
	keptID := uuid.New()
	removedID := uuid.New()

	stored := &domain.Template{
		BaseModel: domain.BaseModel{ID: templateID},
		Title:     "Before",
		Fields: []domain.TemplateField{
			{BaseModel: domain.BaseModel{ID: keptID}, TemplateID: templateID, Name: "Kept", Type: domain.FieldTypeShortText, Order: 0},
			{BaseModel: domain.BaseModel{ID: removedID}, TemplateID: templateID, Name: "Removed", Type: domain.FieldTypeNumber, Order: 1},
		},
	}

	var savedFields []domain.TemplateField
	var savedDeletes []uuid.UUID
	repo := &MockTemplateRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
			return stored, nil
		},
		SaveWithFieldsFunc: func(ctx context.Context, template *domain.Template, fields []domain.TemplateField, deleteFieldIDs []uuid.UUID) error {
			savedFields = fields
			savedDeletes = deleteFieldIDs
			return nil
		},
	}
	svc := NewTemplateService(repo, nil)

	foreignID := uuid.New() // an id the template does not own
	_, err := svc.UpdateTemplate(context.Background(), templateID, &dto.UpdateTemplateRequest{
		Title: "After",
		Fields: []dto.FieldRequest{
			{Name: "New first", Type: "boolean"},
			{ID: &keptID, Name: "Kept renamed", Type: "short_text"},
			{ID: &foreignID, Name: "Smuggled", Type: "short_text"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateTemplate failed: %v", err)
	}

	if len(savedFields) != 3 {
		t.Fatalf("expected 3 saved fields, got %d", len(savedFields))
	}
	// id-less entries and unowned ids insert as new fields
	if savedFields[0].ID != uuid.Nil {
		t.Errorf("new field should have no id, got %s", savedFields[0].ID)
	}
	if savedFields[2].ID != uuid.Nil {
		t.Errorf("unowned id must be discarded, got %s", savedFields[2].ID)
	}
	// known ids are kept so stored values survive
	if savedFields[1].ID != keptID {
		t.Errorf("expected kept field id preserved, got %s", savedFields[1].ID)
	}
	// orders re-sequence to the array index
	for i, f := range savedFields {
		if f.Order != i {
			t.Errorf("field %d: expected order %d, got %d", i, i, f.Order)
		}
	}
	if len(savedDeletes) != 1 || savedDeletes[0] != removedID {
		t.Errorf("expected only the missing field deleted, got %v", savedDeletes)
	}
}

func TestTemplateService_GetTemplate_NotFound(t *testing.T) {
	repo := &MockTemplateRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewTemplateService(repo, nil)

	_, err := svc.GetTemplate(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestTemplateService_DeleteTemplate(t *testing.T) {
	templateID := uuid.New()
	deleted := false
	repo := &MockTemplateRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
			return &domain.Template{BaseModel: domain.BaseModel{ID: templateID}}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := NewTemplateService(repo, nil)

	if err := svc.DeleteTemplate(context.Background(), templateID); err != nil {
		t.Fatalf("DeleteTemplate failed: %v", err)
	}
	if !deleted {
		t.Error("repository delete never called")
	}
}
