package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-records-api/internal/response"
	"meeting-records-api/internal/service"
)

type BackupHandler struct {
	backupService service.BackupService
}

func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// CreateBackup godoc
// @Summary      Create a database backup
// @Description  Runs a point-in-time dump into the backup directory
// @Tags         backups
// @Produce      json
// @Success      201 {object} response.SuccessResponse{data=dto.BackupResponse}
// @Failure      500 {object} response.ErrorResponse "Dump failed"
// @Router       /backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	backup, err := h.backupService.CreateBackup(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, backup)
}

// ListBackups godoc
// @Summary      List database backups
// @Tags         backups
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.BackupResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /backups [get]
func (h *BackupHandler) ListBackups(c *gin.Context) {
	backups, err := h.backupService.ListBackups(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, backups)
}

// DeleteBackup godoc
// @Summary      Delete a database backup
// @Description  Removes one dump by name; names with path separators are rejected
// @Tags         backups
// @Produce      json
// @Param        name path string true "Backup file name"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid backup name"
// @Failure      404 {object} response.ErrorResponse "Backup not found"
// @Router       /backups/{name} [delete]
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	name := c.Param("name")
	if err := h.backupService.DeleteBackup(c.Request.Context(), name); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": name})
}
