package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/response"
)

const backupSuffix = ".dump"

// BackupService defines the interface for point-in-time database dumps
type BackupService interface {
	CreateBackup(ctx context.Context) (*dto.BackupResponse, error)
	ListBackups(ctx context.Context) ([]*dto.BackupResponse, error)
	DeleteBackup(ctx context.Context, name string) error
}

// backupServiceImpl shells out to pg_dump and keeps the dumps in a
// flat directory
type backupServiceImpl struct {
	databaseURL string
	dir         string
	pgDumpPath  string
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBackupService creates a new instance of BackupService
func NewBackupService(databaseURL, dir, pgDumpPath string, m *metrics.Metrics, logger *zap.Logger) (BackupService, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve backup dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	return &backupServiceImpl{
		databaseURL: databaseURL,
		dir:         abs,
		pgDumpPath:  pgDumpPath,
		metrics:     m,
		logger:      logger,
	}, nil
}

// CreateBackup runs pg_dump in custom format into a timestamped file
func (s *backupServiceImpl) CreateBackup(ctx context.Context) (*dto.BackupResponse, error) {
	now := time.Now()
	name := fmt.Sprintf("%s_backup%s_%s%s",
		s.databaseName(), now.Format("020106"), now.Format("1504"), backupSuffix)
	target := filepath.Join(s.dir, name)

	cmd := exec.CommandContext(ctx, s.pgDumpPath, "--format=custom", "--file", target, s.databaseURL)
	output, err := cmd.CombinedOutput()
	if s.metrics != nil {
		s.metrics.RecordTask(metrics.TaskBackup, time.Since(now), err)
	}
	if err != nil {
		// leave no partial dump behind
		_ = os.Remove(target)
		s.logger.Error("pg_dump failed",
			zap.String("output", strings.TrimSpace(string(output))),
			zap.Error(err),
		)
		return nil, response.NewStorageError("Failed to create backup", err.Error())
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, response.NewStorageError("Backup file missing after dump", err.Error())
	}

	s.logger.Info("Backup created", zap.String("name", name), zap.Int64("size_bytes", info.Size()))
	return &dto.BackupResponse{
		Name:      name,
		SizeBytes: info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// ListBackups lists the stored dumps, newest first
func (s *backupServiceImpl) ListBackups(ctx context.Context) ([]*dto.BackupResponse, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, response.NewStorageError("Failed to read backup dir", err.Error())
	}

	backups := make([]*dto.BackupResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), backupSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, &dto.BackupResponse{
			Name:      entry.Name(),
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// DeleteBackup removes one dump. The name is validated against the
// expected shape so the endpoint can never reach outside the dir.
func (s *backupServiceImpl) DeleteBackup(ctx context.Context, name string) error {
	if !validBackupName(name) {
		return response.NewValidationError("Invalid backup name", name)
	}
	target := filepath.Join(s.dir, name)
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return response.NewNotFoundError("Backup not found", "")
		}
		return response.NewStorageError("Failed to delete backup", err.Error())
	}
	s.logger.Info("Backup deleted", zap.String("name", name))
	return nil
}

// validBackupName accepts plain dump file names only
func validBackupName(name string) bool {
	if name == "" || !strings.HasSuffix(name, backupSuffix) {
		return false
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return false
	}
	return true
}

// databaseName extracts the database name from the connection URL,
// falling back to a generic label when it cannot be parsed
func (s *backupServiceImpl) databaseName() string {
	u, err := url.Parse(s.databaseURL)
	if err != nil {
		return "database"
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "database"
	}
	return name
}
