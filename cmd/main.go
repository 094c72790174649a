package main

import (
	"log/slog"
	"os"

	config2 "topup-report-service/pkg/config"

	"topup-report-service/internal/repository"
	"topup-report-service/internal/service"
	"topup-report-service/pkg/validation"

	"github.com/google/uuid"
)

func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	recordRepo := repository.NewRecordRepository(cfg.UsersFile, cfg.CompaniesFile)
	errorLogRepo := repository.NewErrorLogRepository(cfg.ErrorLogFile)
	reportRepo := repository.NewReportRepository(cfg.OutputFile)

	// Initialize validator
	validate := validation.New()

	// Initialize service
	reportService := service.NewReportService(recordRepo, errorLogRepo, reportRepo, validate)

	if err := reportService.Run(); err != nil {
		slog.Error("batch failed", "error", err)
		os.Exit(1)
	}

	slog.Info("batch completed")
}
