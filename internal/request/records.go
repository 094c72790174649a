package request

import "github.com/go-playground/validator/v10"

// UserRecord is one decoded user input record. Fields are pointers so that
// keys absent from the input decode to nil and presence can be validated.
// Field declaration order is the validation order; the first failing field
// wins.
type UserRecord struct {
	ID           *int    `json:"id" validate:"required"`
	FirstName    *string `json:"first_name" validate:"required"`
	LastName     *string `json:"last_name" validate:"required"`
	Email        *string `json:"email" validate:"required,report_email"`
	CompanyID    *int    `json:"company_id" validate:"required"`
	EmailStatus  *bool   `json:"email_status" validate:"required"`
	ActiveStatus *bool   `json:"active_status" validate:"required"`
	Tokens       *int    `json:"tokens" validate:"required"`
}

// CompanyRecord is one decoded company input record.
type CompanyRecord struct {
	ID          *int    `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	TopUp       *int    `json:"top_up" validate:"required"`
	EmailStatus *bool   `json:"email_status" validate:"required"`
}

// Validation messages are kept byte-for-byte compatible with the previous
// report generator, including "Top up can't be nil" for a missing user
// company_id.
var userMessages = map[string]string{
	"ID":           "Id can't be nil",
	"FirstName":    "First name can't be nil",
	"LastName":     "Last name can't be nil",
	"Email":        "Email can't be nil",
	"CompanyID":    "Top up can't be nil",
	"EmailStatus":  "Email status can't be nil",
	"ActiveStatus": "Active status can't be nil",
	"Tokens":       "Tokens can't be nil",
}

var companyMessages = map[string]string{
	"ID":          "Id can't be blank",
	"Name":        "Name can't be blank",
	"TopUp":       "Top up can't be blank",
	"EmailStatus": "Email status can't be blank",
}

// UserMessage maps a validator field error on a UserRecord to its
// report-compatible message.
func UserMessage(fe validator.FieldError) string {
	if fe.StructField() == "Email" && fe.Tag() == "report_email" {
		return "Malformed email"
	}
	return userMessages[fe.StructField()]
}

// CompanyMessage maps a validator field error on a CompanyRecord to its
// report-compatible message.
func CompanyMessage(fe validator.FieldError) string {
	return companyMessages[fe.StructField()]
}
