package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Input address syntax: word-char local part (plus ., -, +), dot-separated
// domain labels, mandatory trailing alphabetic label. "user@host" without a
// dot-label is rejected.
var emailPattern = regexp.MustCompile(`(?i)^[\w+.\-]+@[a-z\d\-]+(\.[a-z]+)*\.[a-z]+$`)

// New returns a validator with the report's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}
