package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/store"
	"github.com/smart-planner/smart-planner/internal/validators"
	"github.com/smart-planner/smart-planner/models"
)

// deadlineGracePeriod is how far in the past a deadline may lie at creation
// time and still be accepted. It absorbs clock skew between the student's
// browser and the server.
const deadlineGracePeriod = 5 * time.Minute

// taskService is the concrete implementation of TaskService. All repository
// calls carry the calling student's ID, so a task owned by another student
// is reported as missing rather than forbidden.
type taskService struct {
	taskRepository    store.TaskRepository
	subjectRepository store.SubjectRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given repositories.
// The SubjectRepository is needed to verify subject ownership when a task is
// linked to a subject.
func NewTaskService(taskRepository store.TaskRepository, subjectRepository store.SubjectRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository:    taskRepository,
		subjectRepository: subjectRepository,
		validator:         validators.NewTaskValidator(),
		logger:            logger,
	}
}

// CreateTask creates a new task for the student.
//
// The deadline must not lie further than deadlineGracePeriod in the past.
// When the request links a subject, that subject must belong to the student;
// otherwise ErrSubjectNotOwned is returned.
func (t *taskService) CreateTask(ctx context.Context, studentID uuid.UUID, request models.TaskCreateRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("student_id", studentID.String()).Msg("invalid task data provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.Deadline.Before(time.Now().Add(-deadlineGracePeriod)) {
		log.Error().
			Str("student_id", studentID.String()).
			Time("deadline", request.Deadline).
			Msg("deadline is in the past")
		return models.Task{}, ErrDeadlineInPast
	}

	if err := t.checkSubjectLink(ctx, studentID, request.SubjectID); err != nil {
		return models.Task{}, err
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, request.Task(studentID))
	if err != nil {
		log.Err(err).Str("student_id", studentID.String()).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// UpdateTask overwrites every mutable field of an existing task.
//
// Ownership is established first: a task that does not exist or belongs to
// another student yields store.ErrTaskNotFound before any field is examined.
// Moving the deadline is allowed even into the past, so a student can fix
// the record of an already-missed task.
func (t *taskService) UpdateTask(ctx context.Context, studentID, taskID uuid.UUID, request models.TaskUpdateRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.GetTaskByID(ctx, taskID, studentID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	if err = t.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("task_id", taskID.String()).Msg("invalid task data provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = t.checkSubjectLink(ctx, studentID, request.SubjectID); err != nil {
		return models.Task{}, err
	}

	updatedTask, err := t.taskRepository.UpdateTask(ctx, request.Apply(task))
	if err != nil {
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask removes a task. Returns false with a nil error when the task
// does not exist or belongs to another student.
func (t *taskService) DeleteTask(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	deleted, err := t.taskRepository.DeleteTask(ctx, taskID, studentID)
	if err != nil {
		return false, fmt.Errorf("task deletion ended with error: %w", err)
	}

	return deleted, nil
}

// GetTask retrieves one task with its subject name resolved.
func (t *taskService) GetTask(ctx context.Context, studentID, taskID uuid.UUID) (models.Task, error) {
	task, err := t.taskRepository.GetTaskByID(ctx, taskID, studentID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// SearchTasks returns the student's tasks matching the given criteria. The
// status semantics (pending vs overdue) are anchored to the current instant.
func (t *taskService) SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, search); err != nil {
		log.Error().Err(err).Str("student_id", studentID.String()).Msg("invalid search criteria provided")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tasks, err := t.taskRepository.SearchTasks(ctx, studentID, search, time.Now())
	if err != nil {
		return nil, fmt.Errorf("task search ended with error: %w", err)
	}

	return tasks, nil
}

// ToggleTaskStatus flips a task's completion flag. Returns false with a nil
// error when the task does not exist or belongs to another student.
func (t *taskService) ToggleTaskStatus(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	toggled, err := t.taskRepository.ToggleTaskStatus(ctx, taskID, studentID)
	if err != nil {
		return false, fmt.Errorf("task status toggle ended with error: %w", err)
	}

	return toggled, nil
}

// checkSubjectLink verifies that the linked subject, when present, belongs
// to the student. A missing or foreign subject yields ErrSubjectNotOwned.
func (t *taskService) checkSubjectLink(ctx context.Context, studentID uuid.UUID, subjectID *uuid.UUID) error {
	if subjectID == nil {
		return nil
	}

	exists, err := t.subjectRepository.SubjectExists(ctx, *subjectID, studentID)
	if err != nil {
		return fmt.Errorf("subject lookup failed: %w", err)
	}
	if !exists {
		return ErrSubjectNotOwned
	}

	return nil
}
