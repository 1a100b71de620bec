package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/models"
)

// ─────────────────────────────────────────────
// Repository mocks
// ─────────────────────────────────────────────

// mockStudentRepository implements store.StudentRepository for unit tests.
// Each method field can be overridden per test case.
type mockStudentRepository struct {
	createStudentFn      func(ctx context.Context, student models.Student) (models.Student, error)
	findStudentByEmailFn func(ctx context.Context, email string) (models.Student, error)
	findStudentByIDFn    func(ctx context.Context, id uuid.UUID) (models.Student, error)
}

func (m *mockStudentRepository) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	return m.createStudentFn(ctx, student)
}

func (m *mockStudentRepository) FindStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	return m.findStudentByEmailFn(ctx, email)
}

func (m *mockStudentRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (models.Student, error) {
	return m.findStudentByIDFn(ctx, id)
}

// mockSubjectRepository implements store.SubjectRepository for unit tests.
type mockSubjectRepository struct {
	createSubjectFn        func(ctx context.Context, subject models.Subject) (models.Subject, error)
	updateSubjectFn        func(ctx context.Context, subject models.Subject) (models.Subject, error)
	deleteSubjectFn        func(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error)
	getSubjectByIDFn       func(ctx context.Context, subjectID, studentID uuid.UUID) (models.Subject, error)
	getSubjectsByStudentFn func(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error)
	subjectNameExistsFn    func(ctx context.Context, studentID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	subjectExistsFn        func(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error)
	subjectHasTasksFn      func(ctx context.Context, subjectID uuid.UUID) (bool, error)
}

func (m *mockSubjectRepository) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	return m.createSubjectFn(ctx, subject)
}

func (m *mockSubjectRepository) UpdateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	return m.updateSubjectFn(ctx, subject)
}

func (m *mockSubjectRepository) DeleteSubject(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error) {
	return m.deleteSubjectFn(ctx, subjectID, studentID)
}

func (m *mockSubjectRepository) GetSubjectByID(ctx context.Context, subjectID, studentID uuid.UUID) (models.Subject, error) {
	return m.getSubjectByIDFn(ctx, subjectID, studentID)
}

func (m *mockSubjectRepository) GetSubjectsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error) {
	return m.getSubjectsByStudentFn(ctx, studentID)
}

func (m *mockSubjectRepository) SubjectNameExists(ctx context.Context, studentID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return m.subjectNameExistsFn(ctx, studentID, name, excludeID)
}

func (m *mockSubjectRepository) SubjectExists(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error) {
	return m.subjectExistsFn(ctx, subjectID, studentID)
}

func (m *mockSubjectRepository) SubjectHasTasks(ctx context.Context, subjectID uuid.UUID) (bool, error) {
	return m.subjectHasTasksFn(ctx, subjectID)
}

// mockTaskRepository implements store.TaskRepository for unit tests.
type mockTaskRepository struct {
	createTaskFn           func(ctx context.Context, task models.Task) (models.Task, error)
	updateTaskFn           func(ctx context.Context, task models.Task) (models.Task, error)
	deleteTaskFn           func(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)
	getTaskByIDFn          func(ctx context.Context, taskID, studentID uuid.UUID) (models.Task, error)
	searchTasksFn          func(ctx context.Context, studentID uuid.UUID, search models.TaskSearch, now time.Time) ([]models.Task, error)
	getAllTasksByStudentFn func(ctx context.Context, studentID uuid.UUID) ([]models.Task, error)
	markTaskDoneFn         func(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)
	toggleTaskStatusFn     func(ctx context.Context, taskID, studentID uuid.UUID) (bool, error)
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.createTaskFn(ctx, task)
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.updateTaskFn(ctx, task)
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	return m.deleteTaskFn(ctx, taskID, studentID)
}

func (m *mockTaskRepository) GetTaskByID(ctx context.Context, taskID, studentID uuid.UUID) (models.Task, error) {
	return m.getTaskByIDFn(ctx, taskID, studentID)
}

func (m *mockTaskRepository) SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch, now time.Time) ([]models.Task, error) {
	return m.searchTasksFn(ctx, studentID, search, now)
}

func (m *mockTaskRepository) GetAllTasksByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Task, error) {
	return m.getAllTasksByStudentFn(ctx, studentID)
}

func (m *mockTaskRepository) MarkTaskDone(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	return m.markTaskDoneFn(ctx, taskID, studentID)
}

func (m *mockTaskRepository) ToggleTaskStatus(ctx context.Context, taskID, studentID uuid.UUID) (bool, error) {
	return m.toggleTaskStatusFn(ctx, taskID, studentID)
}
