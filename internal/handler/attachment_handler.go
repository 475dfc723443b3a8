package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
	"meeting-records-api/internal/storage"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
	store             storage.Store
}

func NewAttachmentHandler(attachmentService service.AttachmentService, store storage.Store) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		store:             store,
	}
}

// UploadAttachment godoc
// @Summary      Upload a file to a meeting
// @Description  Stores the file on disk and records its metadata; the storage path is fixed at upload time
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Param        file formData file true "File to upload"
// @Success      201 {object} response.SuccessResponse{data=dto.AttachmentResponse}
// @Failure      400 {object} response.ErrorResponse "Missing file or invalid meeting ID"
// @Failure      404 {object} response.ErrorResponse "Meeting not found"
// @Router       /meetings/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.UploadAttachment(
		c.Request.Context(),
		meetingID,
		filepath.Base(fileHeader.Filename),
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// ListAttachments godoc
// @Summary      List a meeting's attachments
// @Tags         attachments
// @Produce      json
// @Param        id path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.AttachmentResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid meeting ID"
// @Router       /meetings/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), meetingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attachments)
}

// DownloadAttachment godoc
// @Summary      Download an attachment
// @Description  Streams the stored file under its original name
// @Tags         attachments
// @Produce      octet-stream
// @Param        id path string true "Attachment ID (UUID)"
// @Success      200 {file} binary
// @Failure      400 {object} response.ErrorResponse "Invalid attachment ID"
// @Failure      404 {object} response.ErrorResponse "Attachment or file not found"
// @Router       /attachments/{id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid attachment ID")
		return
	}

	attachment, err := h.attachmentService.GetAttachment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if !h.store.Exists(attachment.StoragePath) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "File is missing from storage")
		return
	}

	c.FileAttachment(filepath.Join(h.store.Root(), filepath.FromSlash(attachment.StoragePath)), attachment.OriginalName)
}

// DeleteAttachment godoc
// @Summary      Delete an attachment
// @Description  Removes the metadata row; file removal is best effort
// @Tags         attachments
// @Produce      json
// @Param        id path string true "Attachment ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid attachment ID"
// @Failure      404 {object} response.ErrorResponse "Attachment not found"
// @Router       /attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid attachment ID")
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
