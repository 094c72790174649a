package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	UsersFile     string
	CompaniesFile string
	OutputFile    string
	ErrorLogFile  string
}

func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Warn("env file not found, using system environment variables")
		}
	}

	cfg := &Config{
		UsersFile:     getEnvWithDefault("USERS_FILE", "./data/users.json"),
		CompaniesFile: getEnvWithDefault("COMPANIES_FILE", "./data/companies.json"),
		OutputFile:    getEnvWithDefault("OUTPUT_FILE", "./output/output.txt"),
		ErrorLogFile:  getEnvWithDefault("ERROR_LOG_FILE", "./output/error_logs.txt"),
	}

	slog.Info("configuration loaded",
		"users_file", cfg.UsersFile,
		"companies_file", cfg.CompaniesFile,
		"output_file", cfg.OutputFile,
	)

	return cfg, nil
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
