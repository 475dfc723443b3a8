package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/response"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockTemplateService is a mock implementation of TemplateService
type MockTemplateService struct {
	CreateTemplateFunc func(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	GetTemplateFunc    func(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error)
	ListTemplatesFunc  func(ctx context.Context) ([]*dto.TemplateResponse, error)
	UpdateTemplateFunc func(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	DeleteTemplateFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTemplateService) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if m.CreateTemplateFunc != nil {
		return m.CreateTemplateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error) {
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTemplateService) ListTemplates(ctx context.Context) ([]*dto.TemplateResponse, error) {
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc(ctx)
	}
	return nil, nil
}

func (m *MockTemplateService) UpdateTemplate(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if m.UpdateTemplateFunc != nil {
		return m.UpdateTemplateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockTemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTemplateFunc != nil {
		return m.DeleteTemplateFunc(ctx, id)
	}
	return nil
}

func TestTemplateHandler_CreateTemplate(t *testing.T) {
	templateID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockTemplateService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "creates template",
			requestBody: dto.CreateTemplateRequest{
				Title: "Board Meeting",
				Fields: []dto.FieldRequest{
					{Name: "Topic", Type: "short_text"},
				},
			},
			mockService: func(m *MockTemplateService) {
				m.CreateTemplateFunc = func(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
					return &dto.TemplateResponse{TemplateID: templateID, Title: req.Title}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.SuccessResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if !resp.Success {
					t.Error("Expected success envelope")
				}

				dataBytes, _ := json.Marshal(resp.Data)
				var tmpl dto.TemplateResponse
				if err := json.Unmarshal(dataBytes, &tmpl); err != nil {
					t.Fatalf("Failed to unmarshal data: %v", err)
				}
				if tmpl.Title != "Board Meeting" {
					t.Errorf("Expected title 'Board Meeting', got %q", tmpl.Title)
				}
			},
		},
		{
			name:           "rejects malformed body",
			requestBody:    "invalid json",
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "maps validation error",
			requestBody: dto.CreateTemplateRequest{
				Title: "Broken",
				Fields: []dto.FieldRequest{
					{Name: "Topic", Type: "dropdown"},
				},
			},
			mockService: func(m *MockTemplateService) {
				m.CreateTemplateFunc = func(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
					return nil, response.NewValidationError("Unknown field type", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTemplateService{}
			tt.mockService(mockService)
			handler := NewTemplateHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/templates", handler.CreateTemplate)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/templates", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("CreateTemplate() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTemplateHandler_GetTemplate(t *testing.T) {
	templateID := uuid.New()

	tests := []struct {
		name           string
		templateID     string
		mockService    func(*MockTemplateService)
		expectedStatus int
	}{
		{
			name:       "returns template",
			templateID: templateID.String(),
			mockService: func(m *MockTemplateService) {
				m.GetTemplateFunc = func(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error) {
					return &dto.TemplateResponse{TemplateID: id, Title: "Board Meeting"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects malformed id",
			templateID:     "not-a-uuid",
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "maps not found",
			templateID: templateID.String(),
			mockService: func(m *MockTemplateService) {
				m.GetTemplateFunc = func(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error) {
					return nil, response.NewNotFoundError("Template not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTemplateService{}
			tt.mockService(mockService)
			handler := NewTemplateHandler(mockService)

			router := setupTestRouter()
			router.GET("/api/templates/:id", handler.GetTemplate)

			req := httptest.NewRequest(http.MethodGet, "/api/templates/"+tt.templateID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GetTemplate() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestTemplateHandler_DeleteTemplate(t *testing.T) {
	templateID := uuid.New()

	deleted := false
	mockService := &MockTemplateService{
		DeleteTemplateFunc: func(ctx context.Context, id uuid.UUID) error {
			if id != templateID {
				t.Errorf("DeleteTemplate() id = %v, want %v", id, templateID)
			}
			deleted = true
			return nil
		},
	}
	handler := NewTemplateHandler(mockService)

	router := setupTestRouter()
	router.DELETE("/api/templates/:id", handler.DeleteTemplate)

	req := httptest.NewRequest(http.MethodDelete, "/api/templates/"+templateID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("DeleteTemplate() status = %v, want %v", w.Code, http.StatusOK)
	}
	if !deleted {
		t.Error("Expected service delete to be called")
	}
}
