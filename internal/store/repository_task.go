package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD and search operations against the "tasks" table,
// joining "subjects" for the read-side subject name.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (student_id, task_id, etc.).
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned
// timestamps. The identity is a time-ordered UUID generated here; the
// subject link (when present) is validated by the service layer before this
// call and additionally by the FK constraint.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	task.ID = utils.NewUUID()

	row := r.db.QueryRowContext(ctx, createTask,
		task.ID, task.StudentID, task.SubjectID, task.Title, task.Description, task.Deadline)

	if err := row.Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("student_id", task.StudentID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error creating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// UpdateTask overwrites every mutable field (title, description, deadline,
// completion flag, subject link) and refreshes the update timestamp.
//
// Missing and foreign tasks are indistinguishable: both yield [ErrTaskNotFound].
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateTask,
		task.Title, task.Description, task.Deadline, task.Done, task.SubjectID, task.ID, task.StudentID)

	if err := row.Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", task.ID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// DeleteTask removes the task and reports whether a row was removed.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID, studentID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Str("task_id", taskID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error deleting task")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// GetTaskByID retrieves one task with its subject name resolved. Missing and
// foreign tasks are indistinguishable: both yield [ErrTaskNotFound].
func (r *taskRepository) GetTaskByID(ctx context.Context, taskID, studentID uuid.UUID) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getTaskByID, taskID, studentID)

	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.GetTaskByID").
			Str("task_id", taskID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error getting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// SearchTasks returns the student's tasks matching the given criteria.
//
// The SELECT is produced by [buildTaskSearchQuery]; the now instant anchors
// the pending/overdue status semantics. Returns an empty slice when nothing
// matches — an empty criteria set never errors.
func (r *taskRepository) SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch, now time.Time) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTaskSearchQuery(studentID, search, now)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.SearchTasks").
			Str("student_id", studentID.String()).
			Msg("failed to create query")
		return nil, err
	}

	return r.queryTasks(ctx, "*taskRepository.SearchTasks", studentID, query, args...)
}

// GetAllTasksByStudent returns the student's entire task set, deadline
// ascending, as one snapshot for dashboard computation.
func (r *taskRepository) GetAllTasksByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Task, error) {
	return r.queryTasks(ctx, "*taskRepository.GetAllTasksByStudent", studentID, getAllTasksByStudent, studentID)
}

// MarkTaskDone unconditionally sets the completion flag. A single UPDATE
// keeps the operation idempotent and race-free; the affected row count
// distinguishes "done" from "not found or not owned".
func (r *taskRepository) MarkTaskDone(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	return r.execTaskFlag(ctx, "*taskRepository.MarkTaskDone", markTaskDone, taskID, studentID)
}

// ToggleTaskStatus flips the completion flag in a single UPDATE. The
// affected row count distinguishes "toggled" from "not found or not owned".
func (r *taskRepository) ToggleTaskStatus(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	return r.execTaskFlag(ctx, "*taskRepository.ToggleTaskStatus", toggleTaskStatus, taskID, studentID)
}

// execTaskFlag runs one of the single-statement completion-flag updates and
// reports whether a row was affected.
func (r *taskRepository) execTaskFlag(ctx context.Context, funcName, query string, taskID, studentID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, taskID, studentID)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("task_id", taskID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating task completion flag")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// queryTasks executes a task SELECT and scans the full result set.
func (r *taskRepository) queryTasks(ctx context.Context, funcName string, studentID uuid.UUID, query string, args ...any) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("student_id", studentID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("failed to execute task query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 20)

	for rows.Next() {
		task, scanErr := scanTask(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Str("student_id", studentID.String()).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Str("student_id", studentID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// scanTask reads one task row in the shared taskColumns order. The nullable
// subject link is scanned through uuid.NullUUID and converted to a pointer.
func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var task models.Task
	var subjectID uuid.NullUUID

	err := scan(
		&task.ID,
		&task.StudentID,
		&subjectID,
		&task.Title,
		&task.Description,
		&task.Deadline,
		&task.Done,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.SubjectName,
	)
	if err != nil {
		return models.Task{}, err
	}

	if subjectID.Valid {
		id := subjectID.UUID
		task.SubjectID = &id
	}

	return task, nil
}
