package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"meeting-records-api/internal/database"
	"meeting-records-api/internal/storage"
)

type HealthHandler struct {
	db    *gorm.DB
	store storage.Store
}

func NewHealthHandler(db *gorm.DB, store storage.Store) *HealthHandler {
	return &HealthHandler{
		db:    db,
		store: store,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "meeting-records-api",
	})
}

// Ready reports whether the database connection is usable. During an
// async reconnect the handler picks up the published connection.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	db := h.db
	if db == nil {
		db = database.GetDB()
	}
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database not connected",
		})
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database error",
		})
		return
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database not reachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
