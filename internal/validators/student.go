package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/smart-planner/smart-planner/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the student's email address.
	FieldEmail = "email"

	// FieldName targets the student's display name.
	FieldName = "name"

	// FieldPassword targets the plain-text password of an auth request.
	FieldPassword = "password"

	// FieldConfirmPassword targets the password confirmation of a
	// registration request.
	FieldConfirmPassword = "confirm_password"
)

// minPasswordLength is the minimum accepted password length, in bytes.
const minPasswordLength = 6

// studentValidator validates authentication payloads: registration and
// login requests.
type studentValidator struct{}

// NewStudentValidator returns a Validator for models.RegisterRequest and
// models.LoginRequest values.
func NewStudentValidator() Validator {
	return &studentValidator{}
}

// Validate checks the given auth request. With no field names every rule is
// applied; otherwise only the named fields are checked.
func (v *studentValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch request := value.(type) {
	case models.RegisterRequest:
		return v.validateRegister(request, fieldSet(fields))
	case models.LoginRequest:
		return v.validateLogin(request, fieldSet(fields))
	default:
		return ErrUnsupportedType
	}
}

func (v *studentValidator) validateRegister(request models.RegisterRequest, fields map[string]bool) error {
	if wantField(fields, FieldEmail) {
		if err := validateEmail(request.Email); err != nil {
			return err
		}
	}

	if wantField(fields, FieldName) {
		if strings.TrimSpace(request.Name) == "" {
			return ErrNameRequired
		}
	}

	if wantField(fields, FieldPassword) {
		if request.Password == "" {
			return ErrPasswordRequired
		}
		if len(request.Password) < minPasswordLength {
			return ErrPasswordTooShort
		}
	}

	if wantField(fields, FieldConfirmPassword) {
		if request.Password != request.ConfirmPassword {
			return ErrPasswordMismatch
		}
	}

	return nil
}

func (v *studentValidator) validateLogin(request models.LoginRequest, fields map[string]bool) error {
	if wantField(fields, FieldEmail) {
		if err := validateEmail(request.Email); err != nil {
			return err
		}
	}

	if wantField(fields, FieldPassword) {
		if request.Password == "" {
			return ErrPasswordRequired
		}
	}

	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// fieldSet converts the variadic field names into a lookup set. An empty
// set means "validate everything".
func fieldSet(fields []string) map[string]bool {
	if len(fields) == 0 {
		return nil
	}

	set := make(map[string]bool, len(fields))
	for _, field := range fields {
		set[field] = true
	}
	return set
}

func wantField(fields map[string]bool, field string) bool {
	return fields == nil || fields[field]
}
