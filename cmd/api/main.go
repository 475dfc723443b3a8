// @title           Meeting Records API
// @version         1.0
// @description     Administration API for meeting record templates, instances, attachments and tracking views

// @host      localhost:8080
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "meeting-records-api/docs" // Swagger docs import

	"meeting-records-api/internal/config"
	"meeting-records-api/internal/database"
	"meeting-records-api/internal/job"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/router"
	"meeting-records-api/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Meeting Records API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize metrics
	m := metrics.New()

	dbConfig := database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}

	onConnect := func(db *gorm.DB) {
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Error("Database migration failed", zap.Error(err))
			return
		}
		database.RegisterMetricsCallbacks(db, m)
	}

	// Connect to the database; the app still starts when the database
	// is down and keeps retrying in the background
	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger, onConnect)
	} else {
		database.SetDB(db)
		onConnect(db)
		logger.Info("Database connected")
	}

	// Initialize attachment storage
	store, err := storage.NewLocalStore(cfg.Storage.AttachmentsDir)
	if err != nil {
		logger.Fatal("Failed to initialize attachment storage", zap.Error(err))
	}

	// Setup router with all dependencies
	r, err := router.Setup(cfg, database.GetDB(), store, m, logger)
	if err != nil {
		logger.Fatal("Failed to set up router", zap.Error(err))
	}

	// Background collectors and jobs
	var statsDone chan struct{}
	var collector *metrics.BusinessMetricsCollector
	if db := database.GetDB(); db != nil {
		statsDone = database.StartDBStatsCollector(db, m)
		collector = metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
	}

	scheduler := cron.New()
	if db := database.GetDB(); db != nil {
		cleanup := job.NewCleanupJob(repository.NewAttachmentRepository(db), store, m, logger)
		if _, err := scheduler.AddJob(cfg.Cleanup.Schedule, cleanup); err != nil {
			logger.Error("Failed to schedule cleanup job",
				zap.String("schedule", cfg.Cleanup.Schedule),
				zap.Error(err),
			)
		}
	}
	scheduler.Start()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Meeting Records API started",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()
	if collector != nil {
		collector.Stop()
	}
	if statsDone != nil {
		close(statsDone)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
