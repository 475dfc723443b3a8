package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
)

type TrackingHandler struct {
	trackingService service.TrackingService
}

func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// CreateList godoc
// @Summary      Create a tracking list
// @Description  Creates a cross-meeting pivot configuration over a template's fields
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTrackingListRequest true "List configuration"
// @Success      201 {object} response.SuccessResponse{data=dto.TrackingListSummary}
// @Failure      400 {object} response.ErrorResponse "Invalid body, unknown field or too many principals"
// @Failure      404 {object} response.ErrorResponse "Template not found"
// @Router       /tracking [post]
func (h *TrackingHandler) CreateList(c *gin.Context) {
	var req dto.CreateTrackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	list, err := h.trackingService.CreateList(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, list)
}

// ListLists godoc
// @Summary      List tracking lists
// @Tags         tracking
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.TrackingListSummary}
// @Failure      500 {object} response.ErrorResponse
// @Router       /tracking [get]
func (h *TrackingHandler) ListLists(c *gin.Context) {
	lists, err := h.trackingService.ListLists(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lists)
}

// GetView godoc
// @Summary      Resolve a tracking list view
// @Description  Returns the pivot of meetings against tracked fields, with entries grouped per meeting
// @Tags         tracking
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        search query string false "Case-insensitive row filter"
// @Success      200 {object} response.SuccessResponse{data=dto.TrackingViewResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid list ID"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /tracking/{id} [get]
func (h *TrackingHandler) GetView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}

	view, err := h.trackingService.ResolveView(c.Request.Context(), id, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, view)
}

// UpdateList godoc
// @Summary      Save a tracking list configuration
// @Description  Diffs the submitted configuration against the stored one; a stale version is rejected with 409
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        request body dto.UpdateTrackingListRequest true "Full configuration with version"
// @Success      200 {object} response.SuccessResponse{data=dto.TrackingListSummary}
// @Failure      400 {object} response.ErrorResponse "Invalid body or configuration"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Failure      409 {object} response.ErrorResponse "Version conflict"
// @Router       /tracking/{id} [put]
func (h *TrackingHandler) UpdateList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}

	var req dto.UpdateTrackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	list, err := h.trackingService.UpdateList(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// DeleteList godoc
// @Summary      Delete a tracking list
// @Tags         tracking
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid list ID"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /tracking/{id} [delete]
func (h *TrackingHandler) DeleteList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}

	if err := h.trackingService.DeleteList(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// AddEntry godoc
// @Summary      Add a follow-up note
// @Description  Appends a note at the end of its meeting bucket, or of the list-global bucket when no meeting is given
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        request body dto.AddEntryRequest true "Note content and optional meeting"
// @Success      201 {object} response.SuccessResponse{data=dto.TrackingEntryResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid body or list ID"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /tracking/{id}/entries [post]
func (h *TrackingHandler) AddEntry(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}

	var req dto.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	entry, err := h.trackingService.AddEntry(c.Request.Context(), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, entry)
}

// UpdateEntry godoc
// @Summary      Update a follow-up note
// @Description  Rewrites the content and/or toggles completion; completing stamps completed_at, reopening clears it
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        entryId path string true "Entry ID (UUID)"
// @Param        request body dto.UpdateEntryRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.TrackingEntryResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid body or ID"
// @Failure      404 {object} response.ErrorResponse "Entry not found"
// @Router       /tracking/{id}/entries/{entryId} [put]
func (h *TrackingHandler) UpdateEntry(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entry ID")
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	entry, err := h.trackingService.UpdateEntry(c.Request.Context(), listID, entryID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary      Delete a follow-up note
// @Tags         tracking
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        entryId path string true "Entry ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid ID"
// @Failure      404 {object} response.ErrorResponse "Entry not found"
// @Router       /tracking/{id}/entries/{entryId} [delete]
func (h *TrackingHandler) DeleteEntry(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entry ID")
		return
	}

	if err := h.trackingService.DeleteEntry(c.Request.Context(), listID, entryID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": entryID})
}

// ReorderEntries godoc
// @Summary      Reorder follow-up notes
// @Description  Rewrites entry order to match the submitted id sequence
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID (UUID)"
// @Param        request body dto.ReorderEntriesRequest true "Entry ids in their new order"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid body or list ID"
// @Failure      404 {object} response.ErrorResponse "List not found"
// @Router       /tracking/{id}/entries/reorder [put]
func (h *TrackingHandler) ReorderEntries(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid list ID")
		return
	}

	var req dto.ReorderEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.trackingService.ReorderEntries(c.Request.Context(), listID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"reordered": len(req.EntryIDs)})
}
