package repository

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrorLogRepository persists validation failures. The log is a single
// slot: every write truncates the file, so only the last error is retained.
type ErrorLogRepository struct {
	path string
}

func NewErrorLogRepository(path string) *ErrorLogRepository {
	return &ErrorLogRepository{path: path}
}

func (r *ErrorLogRepository) Write(message string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create error log directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte("Error: "+message), 0o644); err != nil {
		return fmt.Errorf("failed to write error log: %w", err)
	}
	return nil
}
