package models

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a registered account. Every subject and task in the
// system is owned by exactly one student, and all persistence-layer queries
// are scoped by the student's ID.
type Student struct {
	// ID is the unique identifier of the student.
	ID uuid.UUID `json:"id"`

	// Email is the unique login identifier. Stored as entered and matched
	// case-insensitively at the persistence layer.
	Email string `json:"email"`

	// Name is the display name of the student.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the student's password.
	// It must never be serialized and never stored as plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt and UpdatedAt are assigned by the persistence layer.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}
