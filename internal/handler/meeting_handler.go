package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
)

type MeetingHandler struct {
	meetingService service.MeetingService
}

func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// CreateMeeting godoc
// @Summary      Create a meeting
// @Description  Creates a draft meeting instance under a template
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMeetingRequest true "Meeting metadata"
// @Success      201 {object} response.SuccessResponse{data=dto.MeetingResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, meeting)
}

// GetMeeting godoc
// @Summary      Get one meeting
// @Description  Returns the meeting with its field values and attachments
// @Tags         meetings
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid meeting ID"
// @Failure      404 {object} response.ErrorResponse "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// ListMeetings godoc
// @Summary      List meetings
// @Description  Lists meetings, optionally filtered by template
// @Tags         meetings
// @Produce      json
// @Param        templateId query string false "Template ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MeetingResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid template ID"
// @Router       /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	var templateID *uuid.UUID
	if raw := c.Query("templateId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid template ID")
			return
		}
		templateID = &id
	}

	meetings, err := h.meetingService.ListMeetings(c.Request.Context(), templateID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meetings)
}

// SaveMeeting godoc
// @Summary      Save a meeting
// @Description  Saves metadata and upserts the submitted field values
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Param        request body dto.SaveMeetingRequest true "Metadata and values"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      404 {object} response.ErrorResponse "Meeting not found"
// @Router       /meetings/{id} [put]
func (h *MeetingHandler) SaveMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	var req dto.SaveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.SaveMeeting(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// DuplicateMeeting godoc
// @Summary      Duplicate a meeting
// @Description  Creates an independent copy of the meeting with all its values; attachments are not copied
// @Tags         meetings
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Success      201 {object} response.SuccessResponse{data=dto.MeetingResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid meeting ID"
// @Failure      404 {object} response.ErrorResponse "Meeting not found"
// @Router       /meetings/{id}/duplicate [post]
func (h *MeetingHandler) DuplicateMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	meeting, err := h.meetingService.DuplicateMeeting(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, meeting)
}

// DeleteMeeting godoc
// @Summary      Delete a meeting
// @Tags         meetings
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid meeting ID"
// @Failure      404 {object} response.ErrorResponse "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	if err := h.meetingService.DeleteMeeting(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
