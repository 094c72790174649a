package service

import "topup-report-service/internal/request"

type RecordSource interface {
	LoadUserRecords() ([]request.UserRecord, error)
	LoadCompanyRecords() ([]request.CompanyRecord, error)
}

type ErrorLog interface {
	Write(message string) error
}

type ReportWriter interface {
	Save(report string) error
}
