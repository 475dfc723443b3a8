package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/storage"
)

// cleanupGrace is how recent a file's modtime may be before the sweep
// leaves it alone. Uploads write the file before inserting the row, so
// a file newer than the DB snapshot can still be mid-upload.
const cleanupGrace = 24 * time.Hour

// CleanupJob removes attachment files whose metadata row is gone.
// Row deletion treats file removal as best effort, so orphans on disk
// are expected; this sweep is what eventually collects them.
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	store          storage.Store
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	attachmentRepo repository.AttachmentRepository,
	store storage.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		store:          store,
		metrics:        m,
		logger:         logger,
	}
}

// Run executes one orphan-file sweep. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	start := time.Now()

	j.logger.Info("Starting orphan attachment cleanup")

	knownPaths, err := j.attachmentRepo.FindAllPaths(ctx)
	if err != nil {
		j.logger.Error("Failed to load attachment paths", zap.Error(err))
		if j.metrics != nil {
			j.metrics.RecordTask(metrics.TaskCleanup, time.Since(start), err)
		}
		return
	}
	known := make(map[string]bool, len(knownPaths))
	for _, p := range knownPaths {
		known[p] = true
	}

	removed := 0
	failed := 0
	skipped := 0
	err = j.store.Walk(func(relPath string, modTime time.Time) error {
		if known[relPath] {
			return nil
		}
		if start.Sub(modTime) < cleanupGrace {
			skipped++
			return nil
		}
		if rmErr := j.store.Remove(relPath); rmErr != nil {
			j.logger.Warn("Failed to remove orphan file",
				zap.String("path", relPath),
				zap.Error(rmErr),
			)
			failed++
			return nil
		}
		removed++
		j.logger.Debug("Removed orphan file", zap.String("path", relPath))
		return nil
	})
	if err != nil {
		j.logger.Error("Cleanup walk failed", zap.Error(err))
	}

	if j.metrics != nil {
		j.metrics.RecordTask(metrics.TaskCleanup, time.Since(start), err)
		j.metrics.AddCleanupRemoved(removed)
	}

	j.logger.Info("Orphan attachment cleanup finished",
		zap.Int("removed", removed),
		zap.Int("failed", failed),
		zap.Int("skipped_recent", skipped),
		zap.Int("known_paths", len(knownPaths)),
	)
}
