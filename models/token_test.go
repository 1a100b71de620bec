package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetStudentID(t *testing.T) {
	studentID := uuid.New()
	token := &Token{RegisteredClaims: jwt.RegisteredClaims{Subject: studentID.String()}}

	got, err := token.GetStudentID()
	require.NoError(t, err)
	assert.Equal(t, studentID, got)
}

func TestToken_GetStudentID_BadSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{"empty subject", ""},
		{"not a uuid", "student-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &Token{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}

			_, err := token.GetStudentID()
			assert.Error(t, err)
		})
	}
}

func TestToken_String(t *testing.T) {
	token := &Token{SignedString: "signed.jwt.token"}
	assert.Equal(t, "signed.jwt.token", token.String())
}
