package mapper

import (
	"topup-report-service/internal/domain"
	"topup-report-service/internal/request"
)

// User mappers

// MapUserRecordToDomain maps a validated user record to a domain user.
// The record must have passed validation; fields are assumed non-nil.
func MapUserRecordToDomain(rec *request.UserRecord) *domain.User {
	return &domain.User{
		ID:           *rec.ID,
		FirstName:    *rec.FirstName,
		LastName:     *rec.LastName,
		Email:        *rec.Email,
		CompanyID:    *rec.CompanyID,
		EmailStatus:  *rec.EmailStatus,
		ActiveStatus: *rec.ActiveStatus,
		Tokens:       *rec.Tokens,
	}
}

// Company mappers

func MapCompanyRecordToDomain(rec *request.CompanyRecord) *domain.Company {
	return &domain.Company{
		ID:          *rec.ID,
		Name:        *rec.Name,
		TopUp:       *rec.TopUp,
		EmailStatus: *rec.EmailStatus,
	}
}
