package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-records-api/internal/config"
	"meeting-records-api/internal/handler"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/middleware"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/service"
	"meeting-records-api/internal/storage"
)

// Setup wires repositories, services and handlers into the HTTP routes
func Setup(cfg *config.Config, db *gorm.DB, store storage.Store, m *metrics.Metrics, logger *zap.Logger) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(m))

	// Initialize repositories
	templateRepo := repository.NewTemplateRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	// Initialize services
	templateService := service.NewTemplateService(templateRepo, m)
	meetingService := service.NewMeetingService(meetingRepo, templateRepo, m, logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, meetingRepo, store, logger)
	trackingService := service.NewTrackingService(trackingRepo, templateRepo, meetingRepo, logger)
	exportService := service.NewExportService(templateRepo, meetingRepo, m, logger)
	backupService, err := service.NewBackupService(cfg.Database.URL, cfg.Backup.Dir, cfg.Backup.PgDumpPath, m, logger)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	templateHandler := handler.NewTemplateHandler(templateService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, store)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	exportHandler := handler.NewExportHandler(exportService)
	backupHandler := handler.NewBackupHandler(backupService)
	healthHandler := handler.NewHealthHandler(db, store)

	// Ops endpoints (outside the base path)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored attachment files served statically
	r.Static("/attachments", store.Root())

	// API routes with base path
	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Template routes
		api.POST("/templates", templateHandler.CreateTemplate)
		api.GET("/templates", templateHandler.ListTemplates)
		api.GET("/templates/:id", templateHandler.GetTemplate)
		api.PUT("/templates/:id", templateHandler.UpdateTemplate)
		api.DELETE("/templates/:id", templateHandler.DeleteTemplate)

		// Export routes (per template)
		api.GET("/templates/:id/export", exportHandler.ExportSpreadsheet)
		api.GET("/templates/:id/report", exportHandler.ExportReport)

		// Meeting routes
		api.POST("/meetings", meetingHandler.CreateMeeting)
		api.GET("/meetings", meetingHandler.ListMeetings)
		api.GET("/meetings/:id", meetingHandler.GetMeeting)
		api.PUT("/meetings/:id", meetingHandler.SaveMeeting)
		api.POST("/meetings/:id/duplicate", meetingHandler.DuplicateMeeting)
		api.DELETE("/meetings/:id", meetingHandler.DeleteMeeting)

		// Attachment routes
		api.POST("/meetings/:id/attachments", attachmentHandler.UploadAttachment)
		api.GET("/meetings/:id/attachments", attachmentHandler.ListAttachments)
		api.GET("/attachments/:id/download", attachmentHandler.DownloadAttachment)
		api.DELETE("/attachments/:id", attachmentHandler.DeleteAttachment)

		// Tracking routes
		api.POST("/tracking", trackingHandler.CreateList)
		api.GET("/tracking", trackingHandler.ListLists)
		api.GET("/tracking/:id", trackingHandler.GetView)
		api.PUT("/tracking/:id", trackingHandler.UpdateList)
		api.DELETE("/tracking/:id", trackingHandler.DeleteList)
		api.POST("/tracking/:id/entries", trackingHandler.AddEntry)
		api.PUT("/tracking/:id/entries/reorder", trackingHandler.ReorderEntries)
		api.PUT("/tracking/:id/entries/:entryId", trackingHandler.UpdateEntry)
		api.DELETE("/tracking/:id/entries/:entryId", trackingHandler.DeleteEntry)

		// Backup routes
		api.POST("/backups", backupHandler.CreateBackup)
		api.GET("/backups", backupHandler.ListBackups)
		api.DELETE("/backups/:name", backupHandler.DeleteBackup)
	}

	return r, nil
}
