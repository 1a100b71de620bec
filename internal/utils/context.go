// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, UUID generation, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// StudentIDCtxKey is the key used to store the authenticated student
// identifier in the context. Used together with GetStudentIDFromContext for
// type-safe retrieval of the student ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.StudentIDCtxKey, studentID)
var StudentIDCtxKey = contextKey("studentID")

// GetStudentIDFromContext retrieves the authenticated student identifier
// from the context.
//
// Returns the student ID and an ok flag:
//   - ok == true  — value is found and has the correct uuid.UUID type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	studentID, ok := utils.GetStudentIDFromContext(ctx)
//	if !ok {
//	    // handle missing student in context
//	}
func GetStudentIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	studentID, ok := ctx.Value(StudentIDCtxKey).(uuid.UUID)
	return studentID, ok
}
