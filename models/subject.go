package models

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a named grouping of tasks owned by a single student.
// The (StudentID, Name) pair is unique case-insensitively; the constraint is
// pre-checked at the service layer and additionally enforced by a unique
// index in the database.
type Subject struct {
	// ID is the unique identifier of the subject.
	ID uuid.UUID `json:"id"`

	// StudentID is the owning student. Not exposed via JSON; ownership is
	// derived from the authenticated request, never from the payload.
	StudentID uuid.UUID `json:"-"`

	// Name is the subject name, unique per student (case-insensitive).
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// TaskCount is the number of tasks currently attached to the subject.
	// Populated on reads only; it is not a persisted column.
	TaskCount int `json:"task_count"`
}

// TableName returns the name of the database table
// associated with the Subject model.
func (s Subject) TableName() string {
	return "subjects"
}
