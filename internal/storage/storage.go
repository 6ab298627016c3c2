// Package storage keeps uploaded workbooks and generated reports on the
// local filesystem for the duration of one request. Files are uniquely
// named and callers are expected to Delete them on every exit path.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Config holds storage settings.
type Config struct {
	BaseDir   string // directory for stored files
	ChunkSize int    // copy buffer size in bytes
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseDir:   filepath.Join(os.TempDir(), "valuecheck"),
		ChunkSize: 1024 * 1024,
	}
}

// Local stores files on the local filesystem.
type Local struct {
	config Config
}

// NewLocal creates a local store with the given config.
func NewLocal(config Config) *Local {
	if config.BaseDir == "" {
		config.BaseDir = DefaultConfig().BaseDir
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultConfig().ChunkSize
	}
	return &Local{config: config}
}

// Store copies an uploaded file into the storage directory under a
// unique name and returns the stored path.
func (s *Local) Store(ctx context.Context, file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.config.BaseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := s.Reserve(filename)
	dest, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dest.Close()

	buf := make([]byte, s.config.ChunkSize)
	if _, err := io.CopyBuffer(dest, file, buf); err != nil {
		os.Remove(path) // don't leave partial uploads behind
		return "", fmt.Errorf("failed to copy file contents: %w", err)
	}

	return path, nil
}

// Reserve returns a unique path in the storage directory for a file that
// the caller will write itself (the generated report).
func (s *Local) Reserve(filename string) string {
	ext := filepath.Ext(filename)
	base := filename[:len(filename)-len(ext)]
	timestamp := time.Now().Format("20060102_150405")
	unique := fmt.Sprintf("%s_%s_%s%s", base, timestamp, uuid.New().String()[:8], ext)
	return filepath.Join(s.config.BaseDir, unique)
}

// Delete removes a stored file. Deleting a file that is already gone is
// not an error.
func (s *Local) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
