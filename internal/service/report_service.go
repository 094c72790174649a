package service

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"topup-report-service/internal/domain"
	"topup-report-service/internal/mapper"
	"topup-report-service/internal/my_errors"
	"topup-report-service/internal/request"

	"github.com/go-playground/validator/v10"
)

type ReportService struct {
	records  RecordSource
	errorLog ErrorLog
	report   ReportWriter
	validate *validator.Validate
}

func NewReportService(records RecordSource, errorLog ErrorLog, report ReportWriter, validate *validator.Validate) *ReportService {
	return &ReportService{
		records:  records,
		errorLog: errorLog,
		report:   report,
		validate: validate,
	}
}

// Run loads both record collections, processes the batch and persists the
// report artifact.
func (s *ReportService) Run() error {
	userRecords, err := s.records.LoadUserRecords()
	if err != nil {
		return err
	}

	companyRecords, err := s.records.LoadCompanyRecords()
	if err != nil {
		return err
	}

	report, err := s.ProcessBatch(userRecords, companyRecords)
	if err != nil {
		return err
	}

	if err := s.report.Save(report); err != nil {
		return err
	}

	slog.Info("report written",
		"users", len(userRecords),
		"companies", len(companyRecords),
	)

	return nil
}

// ProcessBatch validates both collections, associates users to companies
// and renders the report. Validation is all-or-nothing: the first invalid
// record aborts the whole batch with no partial output, after its message
// is persisted to the error log.
func (s *ReportService) ProcessBatch(userRecords []request.UserRecord, companyRecords []request.CompanyRecord) (string, error) {
	users, err := s.buildUsers(userRecords)
	if err != nil {
		return "", err
	}

	companies, err := s.buildCompanies(companyRecords)
	if err != nil {
		return "", err
	}

	associate(users, companies)

	return render(companies), nil
}

func (s *ReportService) buildUsers(records []request.UserRecord) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(records))
	for i := range records {
		if err := s.validate.Struct(&records[i]); err != nil {
			verr := firstFailure(err, request.UserMessage)
			s.recordFailure(verr)
			slog.Error("malformed users input", "record", i, "reason", verr.Message)
			return nil, fmt.Errorf("%w: %w", my_errors.ErrMalformedUsers, verr)
		}
		users = append(users, mapper.MapUserRecordToDomain(&records[i]))
	}
	return users, nil
}

func (s *ReportService) buildCompanies(records []request.CompanyRecord) ([]*domain.Company, error) {
	companies := make([]*domain.Company, 0, len(records))
	for i := range records {
		if err := s.validate.Struct(&records[i]); err != nil {
			verr := firstFailure(err, request.CompanyMessage)
			s.recordFailure(verr)
			slog.Error("malformed companies input", "record", i, "reason", verr.Message)
			return nil, fmt.Errorf("%w: %w", my_errors.ErrMalformedCompanies, verr)
		}
		companies = append(companies, mapper.MapCompanyRecordToDomain(&records[i]))
	}
	return companies, nil
}

// firstFailure maps the first field error to its report-compatible message.
// Fields validate in declaration order, so this is the first invalid field.
func firstFailure(err error, message func(validator.FieldError) string) *my_errors.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return my_errors.NewValidationError(message(verrs[0]))
	}
	return my_errors.NewValidationError(err.Error())
}

func (s *ReportService) recordFailure(verr *my_errors.ValidationError) {
	if err := s.errorLog.Write(verr.Message); err != nil {
		slog.Warn("failed to persist error log", "error", err)
	}
}

// associate appends each user to every company whose id matches the user's
// company id. Ids are not required to be unique: a user may attach to more
// than one company, and a user matching none is dropped from the report.
func associate(users []*domain.User, companies []*domain.Company) {
	for _, company := range companies {
		for _, user := range users {
			if user.CompanyID == company.ID {
				company.AddUser(user)
			}
		}
	}
}

// render produces one block per company in input order. Rendering the user
// sections credits token balances as a side effect, so rendering the same
// companies twice double-credits.
func render(companies []*domain.Company) string {
	var buf bytes.Buffer
	for _, company := range companies {
		buf.WriteString("\n")
		buf.WriteString(company.Render())
		buf.WriteString(company.UsersSection())
		buf.WriteString(company.TotalTopUp())
	}
	return buf.String()
}
