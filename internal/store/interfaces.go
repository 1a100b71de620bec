package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/models"
)

// StudentRepository persists and looks up student accounts.
type StudentRepository interface {
	// CreateStudent persists a new account and returns it with
	// server-assigned timestamps. Duplicate emails (case-insensitive) yield
	// ErrEmailAlreadyExists.
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)

	// FindStudentByEmail looks up an account by email, matched
	// case-insensitively. Yields ErrNoStudentWasFound on no match.
	FindStudentByEmail(ctx context.Context, email string) (models.Student, error)

	// FindStudentByID looks up an account by its identifier.
	FindStudentByID(ctx context.Context, id uuid.UUID) (models.Student, error)
}

// SubjectRepository persists subjects. Every operation is scoped by the
// owning student; a subject belonging to another student behaves exactly as
// a missing one.
type SubjectRepository interface {
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	UpdateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)

	// DeleteSubject removes a subject and reports whether a row was removed.
	// Linked tasks are detached (their subject reference is cleared) by the
	// schema, not deleted.
	DeleteSubject(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error)

	GetSubjectByID(ctx context.Context, subjectID, studentID uuid.UUID) (models.Subject, error)
	GetSubjectsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error)

	// SubjectNameExists reports whether the student already has a subject
	// with the given name (case-insensitive). A non-nil excludeID skips that
	// subject, for update-path checks.
	SubjectNameExists(ctx context.Context, studentID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// SubjectExists reports whether the subject exists and is owned by the
	// student.
	SubjectExists(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error)

	// SubjectHasTasks reports whether at least one task is linked to the
	// subject.
	SubjectHasTasks(ctx context.Context, subjectID uuid.UUID) (bool, error)
}

// TaskRepository persists tasks. Every operation is scoped by the owning
// student; a task belonging to another student behaves exactly as a missing
// one.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)

	// DeleteTask removes a task and reports whether a row was removed.
	DeleteTask(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)

	GetTaskByID(ctx context.Context, taskID, studentID uuid.UUID) (models.Task, error)

	// SearchTasks returns the student's tasks matching the criteria, ordered
	// per the requested sort with ID as the tie-break. The now instant
	// anchors the pending/overdue status semantics.
	SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch, now time.Time) ([]models.Task, error)

	// GetAllTasksByStudent returns the student's entire task set ordered by
	// deadline ascending, one snapshot for dashboard computation.
	GetAllTasksByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Task, error)

	// MarkTaskDone unconditionally sets the completion flag and reports
	// whether the task existed. Marking an already-done task is a no-op
	// success.
	MarkTaskDone(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)

	// ToggleTaskStatus flips the completion flag and reports whether the
	// task existed.
	ToggleTaskStatus(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)
}
