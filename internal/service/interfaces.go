package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/models"
)

// AuthService handles student registration, credential verification, and
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Student, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Student, error)
	CreateToken(ctx context.Context, student models.Student) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SubjectService manages a student's subjects. Every operation is scoped to
// the calling student; subjects of other students behave as if they do not
// exist.
type SubjectService interface {
	CreateSubject(ctx context.Context, studentID uuid.UUID, request models.SubjectRequest) (models.Subject, error)
	UpdateSubject(ctx context.Context, studentID, subjectID uuid.UUID, request models.SubjectRequest) (models.Subject, error)
	DeleteSubject(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error)
	GetSubject(ctx context.Context, studentID, subjectID uuid.UUID) (models.Subject, error)
	ListSubjects(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error)
}

// TaskService manages a student's deadline-bound tasks, including the
// criteria-based search used by the task list.
type TaskService interface {
	CreateTask(ctx context.Context, studentID uuid.UUID, request models.TaskCreateRequest) (models.Task, error)
	UpdateTask(ctx context.Context, studentID, taskID uuid.UUID, request models.TaskUpdateRequest) (models.Task, error)
	DeleteTask(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
	GetTask(ctx context.Context, studentID, taskID uuid.UUID) (models.Task, error)
	SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch) ([]models.Task, error)
	ToggleTaskStatus(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
}

// DashboardService computes the student's daily overview and serves the
// quick completion action exposed on it.
type DashboardService interface {
	BuildDashboard(ctx context.Context, studentID uuid.UUID) (models.Dashboard, error)
	MarkTaskDone(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
}
