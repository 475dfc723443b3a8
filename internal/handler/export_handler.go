package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportSpreadsheet godoc
// @Summary      Export a template's meetings as a spreadsheet
// @Description  One row per meeting: fixed metadata columns, then one column per field
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Template ID (UUID)"
// @Success      200 {file} binary
// @Failure      400 {object} response.ErrorResponse "Invalid template ID"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /templates/{id}/export [get]
func (h *ExportHandler) ExportSpreadsheet(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
		return
	}

	filename, data, err := h.exportService.ExportSpreadsheet(c.Request.Context(), templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportReport godoc
// @Summary      Export meetings as an HTML report
// @Description  Self-contained HTML of the selected meetings, or all of them when no ids are given
// @Tags         export
// @Produce      html
// @Param        id path string true "Template ID (UUID)"
// @Param        meetingIds query string false "Comma-separated meeting IDs"
// @Success      200 {string} string "HTML document"
// @Failure      400 {object} response.ErrorResponse "Invalid ID"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /templates/{id}/report [get]
func (h *ExportHandler) ExportReport(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
		return
	}

	var meetingIDs []uuid.UUID
	if raw := c.Query("meetingIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
				return
			}
			meetingIDs = append(meetingIDs, id)
		}
	}

	data, err := h.exportService.ExportReport(c.Request.Context(), templateID, meetingIDs)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
