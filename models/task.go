package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a deadline-bound unit of work owned by a student and optionally
// grouped under one of the student's subjects.
type Task struct {
	// ID is the unique identifier of the task.
	ID uuid.UUID `json:"id"`

	// StudentID is the owning student. Ownership is derived from the
	// authenticated request; every query is scoped by it.
	StudentID uuid.UUID `json:"-"`

	// SubjectID optionally links the task to a subject owned by the same
	// student. Deleting a subject detaches its tasks (the reference becomes
	// nil) rather than deleting them.
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`

	// Title is the short task title.
	Title string `json:"title"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	// Deadline is the instant the task is due.
	Deadline time.Time `json:"deadline"`

	// Done reports whether the task has been completed.
	Done bool `json:"is_done"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// SubjectName is the name of the linked subject, empty when the task is
	// not attached to one. Populated on reads via a join; not persisted on
	// the tasks table.
	SubjectName string `json:"subject_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
