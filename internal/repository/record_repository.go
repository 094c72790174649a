package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"topup-report-service/internal/request"
)

// RecordRepository reads the two input collections from JSON files, each
// holding one array of records.
type RecordRepository struct {
	usersPath     string
	companiesPath string
}

func NewRecordRepository(usersPath, companiesPath string) *RecordRepository {
	return &RecordRepository{
		usersPath:     usersPath,
		companiesPath: companiesPath,
	}
}

func (r *RecordRepository) LoadUserRecords() ([]request.UserRecord, error) {
	var records []request.UserRecord
	if err := decodeFile(r.usersPath, &records); err != nil {
		return nil, fmt.Errorf("failed to load user records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) LoadCompanyRecords() ([]request.CompanyRecord, error) {
	var records []request.CompanyRecord
	if err := decodeFile(r.companiesPath, &records); err != nil {
		return nil, fmt.Errorf("failed to load company records: %w", err)
	}
	return records, nil
}

func decodeFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
