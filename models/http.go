package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login. The token is also
// duplicated in the "Authorization" response header.
type AuthResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
}

// NewAuthResponse builds an AuthResponse from an authenticated student and a
// freshly issued token.
func NewAuthResponse(student Student, token Token) AuthResponse {
	return AuthResponse{
		StudentID: student.ID,
		Name:      student.Name,
		Token:     token.SignedString,
	}
}

// SubjectRequest is the payload of subject create and update calls.
type SubjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subject converts the request into a Subject entity owned by the given
// student. Identity and timestamps are left for the persistence layer.
func (r SubjectRequest) Subject(studentID uuid.UUID) Subject {
	return Subject{
		StudentID:   studentID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// TaskCreateRequest is the payload of POST /api/tasks.
type TaskCreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectID   *uuid.UUID `json:"subject_id"`
	Deadline    time.Time  `json:"deadline"`
}

// Task converts the request into a Task entity owned by the given student.
// Identity and timestamps are left for the persistence layer.
func (r TaskCreateRequest) Task(studentID uuid.UUID) Task {
	return Task{
		StudentID:   studentID,
		SubjectID:   r.SubjectID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
	}
}

// TaskUpdateRequest is the payload of PUT /api/tasks/{id}. Every mutable
// field is overwritten on update, including the completion flag and the
// subject link.
type TaskUpdateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectID   *uuid.UUID `json:"subject_id"`
	Deadline    time.Time  `json:"deadline"`
	Done        bool       `json:"is_done"`
}

// Apply returns a copy of task with all mutable fields replaced by the
// request values. Identity, ownership, and timestamps are preserved.
func (r TaskUpdateRequest) Apply(task Task) Task {
	task.Title = r.Title
	task.Description = r.Description
	task.SubjectID = r.SubjectID
	task.Deadline = r.Deadline
	task.Done = r.Done
	return task
}

// SuccessResponse reports the outcome of operations that answer with a
// boolean rather than an error (delete, toggle, mark-done). Per the tenant
// isolation rules, "false" covers both "does not exist" and "not owned by
// the caller".
type SuccessResponse struct {
	Success bool `json:"success"`
}
