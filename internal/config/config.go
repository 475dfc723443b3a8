package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Backup   BackupConfig   `yaml:"backup"`
	Cleanup  CleanupConfig  `yaml:"cleanup"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	BasePath string `yaml:"base_path"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type StorageConfig struct {
	AttachmentsDir string `yaml:"attachments_dir"`
}

type BackupConfig struct {
	Dir        string `yaml:"dir"`
	PgDumpPath string `yaml:"pg_dump_path"`
}

type CleanupConfig struct {
	// Schedule is a cron expression for the orphan-file sweep
	Schedule string `yaml:"schedule"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     8080,
			BasePath: "/api",
			Env:      "dev",
			LogLevel: "debug",
		},
		Storage: StorageConfig{
			AttachmentsDir: "./attachments",
		},
		Backup: BackupConfig{
			Dir:        "./backups",
			PgDumpPath: "pg_dump",
		},
		Cleanup: CleanupConfig{
			Schedule: "0 3 * * *",
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Server.Env = env
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if dir := os.Getenv("ATTACHMENTS_DIR"); dir != "" {
		cfg.Storage.AttachmentsDir = dir
	}
	if dir := os.Getenv("BACKUP_DIR"); dir != "" {
		cfg.Backup.Dir = dir
	}
	if path := os.Getenv("PG_DUMP_PATH"); path != "" {
		cfg.Backup.PgDumpPath = path
	}
	if schedule := os.Getenv("CLEANUP_SCHEDULE"); schedule != "" {
		cfg.Cleanup.Schedule = schedule
	}

	return cfg, nil
}
