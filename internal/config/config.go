package config

import (
	"os"
	"strconv"

	"valuecheck/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Report  ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// StorageConfig holds upload handling settings
type StorageConfig struct {
	UploadDir   string
	MaxUploadMB int
}

// ReportConfig holds generated-workbook settings
type ReportConfig struct {
	SheetName string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Storage: loadStorageConfig(),
		Report:  loadReportConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		UploadDir:   getEnvOrDefault("UPLOAD_DIR", ""),
		MaxUploadMB: getEnvIntOrDefault("MAX_UPLOAD_MB", 50),
	}
}

func loadReportConfig() ReportConfig {
	return ReportConfig{
		SheetName: getEnvOrDefault("OUTPUT_SHEET", "Validation Report"),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Storage.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Report.SheetName == "" {
		return errors.ConfigInvalid("OUTPUT_SHEET must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
