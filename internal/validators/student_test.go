package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-planner/smart-planner/models"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:           "ada@example.com",
		Name:            "Ada",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestStudentValidator_Register(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"valid", func(r *models.RegisterRequest) {}, nil},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }, ErrEmailRequired},
		{"malformed email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"blank name", func(r *models.RegisterRequest) { r.Name = "   " }, ErrNameRequired},
		{"empty password", func(r *models.RegisterRequest) { r.Password = "" }, ErrPasswordRequired},
		{"short password", func(r *models.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, ErrPasswordTooShort},
		{"mismatched confirmation", func(r *models.RegisterRequest) { r.ConfirmPassword = "different" }, ErrPasswordMismatch},
	}

	v := NewStudentValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRegisterRequest()
			tt.mutate(&request)

			err := v.Validate(context.Background(), request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStudentValidator_Register_FieldScoping(t *testing.T) {
	// a request with a bad name passes when only the email field is checked
	request := validRegisterRequest()
	request.Name = ""

	v := NewStudentValidator()

	assert.NoError(t, v.Validate(context.Background(), request, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), request, FieldName), ErrNameRequired)
}

func TestStudentValidator_Login(t *testing.T) {
	tests := []struct {
		name    string
		request models.LoginRequest
		wantErr error
	}{
		{"valid", models.LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"}, nil},
		{"empty email", models.LoginRequest{Password: "s3cret-pass"}, ErrEmailRequired},
		{"empty password", models.LoginRequest{Email: "ada@example.com"}, ErrPasswordRequired},
	}

	v := NewStudentValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStudentValidator_UnsupportedType(t *testing.T) {
	v := NewStudentValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "a string"), ErrUnsupportedType)
}
