package repository

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportRepository writes the rendered report artifact.
type ReportRepository struct {
	path string
}

func NewReportRepository(path string) *ReportRepository {
	return &ReportRepository{path: path}
}

func (r *ReportRepository) Save(report string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
