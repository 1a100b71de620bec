// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed client for the SmartPlanner REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers (CLI
// tooling, smoke tests, future companion apps) from the HTTP transport. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/models"
)

// ServerAdapter defines transport-agnostic communication with the
// SmartPlanner server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new student account and stores the returned bearer
	// token via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing student and stores the returned bearer
	// token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// CreateSubject creates a subject for the authenticated student.
	CreateSubject(ctx context.Context, request models.SubjectRequest) (models.Subject, error)

	// ListSubjects returns all subjects of the authenticated student.
	ListSubjects(ctx context.Context) ([]models.Subject, error)

	// DeleteSubject removes a subject. Returns false when the subject does
	// not exist; a subject that still has tasks yields [ErrConflict].
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) (bool, error)

	// CreateTask creates a task for the authenticated student.
	CreateTask(ctx context.Context, request models.TaskCreateRequest) (models.Task, error)

	// SearchTasks returns the authenticated student's tasks matching the
	// given criteria.
	SearchTasks(ctx context.Context, search models.TaskSearch) ([]models.Task, error)

	// ToggleTask flips a task's completion flag. Returns false when the task
	// does not exist.
	ToggleTask(ctx context.Context, taskID uuid.UUID) (bool, error)

	// Dashboard fetches the authenticated student's daily overview.
	Dashboard(ctx context.Context) (models.Dashboard, error)

	// MarkTaskDone marks a task as completed from the dashboard. Returns
	// false when the task does not exist.
	MarkTaskDone(ctx context.Context, taskID uuid.UUID) (bool, error)
}
