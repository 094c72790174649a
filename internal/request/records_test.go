package request

import (
	"encoding/json"
	"testing"

	"topup-report-service/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validUserRecord() UserRecord {
	return UserRecord{
		ID:           ptr(1),
		FirstName:    ptr("John"),
		LastName:     ptr("Doe"),
		Email:        ptr("john@example.com"),
		CompanyID:    ptr(1),
		EmailStatus:  ptr(true),
		ActiveStatus: ptr(true),
		Tokens:       ptr(100),
	}
}

func validCompanyRecord() CompanyRecord {
	return CompanyRecord{
		ID:          ptr(1),
		Name:        ptr("Test Company"),
		TopUp:       ptr(100),
		EmailStatus: ptr(true),
	}
}

func firstError(t *testing.T, err error) validator.FieldError {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	return verrs[0]
}

func TestUserRecordValidation(t *testing.T) {
	validate := validation.New()

	t.Run("valid record passes", func(t *testing.T) {
		rec := validUserRecord()
		require.NoError(t, validate.Struct(&rec))
	})

	t.Run("false and zero values are present", func(t *testing.T) {
		rec := validUserRecord()
		rec.EmailStatus = ptr(false)
		rec.ActiveStatus = ptr(false)
		rec.Tokens = ptr(0)
		require.NoError(t, validate.Struct(&rec))
	})

	missingField := []struct {
		name    string
		mutate  func(*UserRecord)
		message string
	}{
		{"id", func(r *UserRecord) { r.ID = nil }, "Id can't be nil"},
		{"first_name", func(r *UserRecord) { r.FirstName = nil }, "First name can't be nil"},
		{"last_name", func(r *UserRecord) { r.LastName = nil }, "Last name can't be nil"},
		{"email", func(r *UserRecord) { r.Email = nil }, "Email can't be nil"},
		{"company_id", func(r *UserRecord) { r.CompanyID = nil }, "Top up can't be nil"},
		{"email_status", func(r *UserRecord) { r.EmailStatus = nil }, "Email status can't be nil"},
		{"active_status", func(r *UserRecord) { r.ActiveStatus = nil }, "Active status can't be nil"},
		{"tokens", func(r *UserRecord) { r.Tokens = nil }, "Tokens can't be nil"},
	}

	for _, tc := range missingField {
		t.Run("missing "+tc.name, func(t *testing.T) {
			rec := validUserRecord()
			tc.mutate(&rec)

			err := validate.Struct(&rec)

			require.Error(t, err)
			assert.Equal(t, tc.message, UserMessage(firstError(t, err)))
		})
	}

	t.Run("malformed email", func(t *testing.T) {
		rec := validUserRecord()
		rec.Email = ptr("invalid_email")

		err := validate.Struct(&rec)

		require.Error(t, err)
		assert.Equal(t, "Malformed email", UserMessage(firstError(t, err)))
	})

	t.Run("first failing field wins", func(t *testing.T) {
		rec := validUserRecord()
		rec.ID = nil
		rec.Email = nil
		rec.Tokens = nil

		err := validate.Struct(&rec)

		require.Error(t, err)
		assert.Equal(t, "Id can't be nil", UserMessage(firstError(t, err)))
	})
}

func TestUserRecordEmailSyntax(t *testing.T) {
	validate := validation.New()

	cases := []struct {
		email string
		valid bool
	}{
		{"john@example.com", true},
		{"a.b+c@sub.example.co.uk", true},
		{"first_last@example.com", true},
		{"john@host-1.io", true},
		{"invalid_email", false},
		{"no-at-sign.com", false},
		{"john@example", false},
		{"john@", false},
		{"@example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			rec := validUserRecord()
			rec.Email = ptr(tc.email)

			err := validate.Struct(&rec)

			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "Malformed email", UserMessage(firstError(t, err)))
			}
		})
	}
}

func TestCompanyRecordValidation(t *testing.T) {
	validate := validation.New()

	t.Run("valid record passes", func(t *testing.T) {
		rec := validCompanyRecord()
		require.NoError(t, validate.Struct(&rec))
	})

	missingField := []struct {
		name    string
		mutate  func(*CompanyRecord)
		message string
	}{
		{"id", func(r *CompanyRecord) { r.ID = nil }, "Id can't be blank"},
		{"name", func(r *CompanyRecord) { r.Name = nil }, "Name can't be blank"},
		{"top_up", func(r *CompanyRecord) { r.TopUp = nil }, "Top up can't be blank"},
		{"email_status", func(r *CompanyRecord) { r.EmailStatus = nil }, "Email status can't be blank"},
	}

	for _, tc := range missingField {
		t.Run("missing "+tc.name, func(t *testing.T) {
			rec := validCompanyRecord()
			tc.mutate(&rec)

			err := validate.Struct(&rec)

			require.Error(t, err)
			assert.Equal(t, tc.message, CompanyMessage(firstError(t, err)))
		})
	}
}

func TestUserRecordDecoding(t *testing.T) {
	t.Run("absent keys decode to nil", func(t *testing.T) {
		var rec UserRecord
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "first_name": "John"}`), &rec))

		assert.Equal(t, 1, *rec.ID)
		assert.Equal(t, "John", *rec.FirstName)
		assert.Nil(t, rec.LastName)
		assert.Nil(t, rec.Tokens)
	})

	t.Run("explicit null decodes to nil", func(t *testing.T) {
		var rec UserRecord
		require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &rec))

		assert.Nil(t, rec.ID)
	})
}
