package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// CreateTemplate godoc
// @Summary      Create a form template
// @Description  Creates a template with its ordered field definitions
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTemplateRequest true "Template definition"
// @Success      201 {object} response.SuccessResponse{data=dto.TemplateResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid body or field definition"
// @Failure      500 {object} response.ErrorResponse
// @Router       /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, template)
}

// GetTemplate godoc
// @Summary      Get one template
// @Description  Returns a template with its fields in display order
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TemplateResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid template ID"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, template)
}

// ListTemplates godoc
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.TemplateResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, templates)
}

// UpdateTemplate godoc
// @Summary      Update a template and its field list
// @Description  Saves title, description and the full field list; fields keep their stored values when only reordered
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id path string true "Template ID (UUID)"
// @Param        request body dto.UpdateTemplateRequest true "Template definition"
// @Success      200 {object} response.SuccessResponse{data=dto.TemplateResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid body or field definition"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary      Delete a template
// @Description  Removes the template with all its meetings, values, attachments and tracking lists
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid template ID"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
