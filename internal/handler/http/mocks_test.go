package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/service"
	"github.com/smart-planner/smart-planner/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for handler tests. Each
// method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.Student, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.Student, error)
	createTokenFn func(ctx context.Context, student models.Student) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.Student, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Student, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, student models.Student) (models.Token, error) {
	return m.createTokenFn(ctx, student)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockSubjectService implements service.SubjectService for handler tests.
type mockSubjectService struct {
	createSubjectFn func(ctx context.Context, studentID uuid.UUID, request models.SubjectRequest) (models.Subject, error)
	updateSubjectFn func(ctx context.Context, studentID, subjectID uuid.UUID, request models.SubjectRequest) (models.Subject, error)
	deleteSubjectFn func(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error)
	getSubjectFn    func(ctx context.Context, studentID, subjectID uuid.UUID) (models.Subject, error)
	listSubjectsFn  func(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error)
}

func (m *mockSubjectService) CreateSubject(ctx context.Context, studentID uuid.UUID, request models.SubjectRequest) (models.Subject, error) {
	return m.createSubjectFn(ctx, studentID, request)
}

func (m *mockSubjectService) UpdateSubject(ctx context.Context, studentID, subjectID uuid.UUID, request models.SubjectRequest) (models.Subject, error) {
	return m.updateSubjectFn(ctx, studentID, subjectID, request)
}

func (m *mockSubjectService) DeleteSubject(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error) {
	return m.deleteSubjectFn(ctx, studentID, subjectID)
}

func (m *mockSubjectService) GetSubject(ctx context.Context, studentID, subjectID uuid.UUID) (models.Subject, error) {
	return m.getSubjectFn(ctx, studentID, subjectID)
}

func (m *mockSubjectService) ListSubjects(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error) {
	return m.listSubjectsFn(ctx, studentID)
}

// mockTaskService implements service.TaskService for handler tests.
type mockTaskService struct {
	createTaskFn       func(ctx context.Context, studentID uuid.UUID, request models.TaskCreateRequest) (models.Task, error)
	updateTaskFn       func(ctx context.Context, studentID, taskID uuid.UUID, request models.TaskUpdateRequest) (models.Task, error)
	deleteTaskFn       func(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
	getTaskFn          func(ctx context.Context, studentID, taskID uuid.UUID) (models.Task, error)
	searchTasksFn      func(ctx context.Context, studentID uuid.UUID, search models.TaskSearch) ([]models.Task, error)
	toggleTaskStatusFn func(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, studentID uuid.UUID, request models.TaskCreateRequest) (models.Task, error) {
	return m.createTaskFn(ctx, studentID, request)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, studentID, taskID uuid.UUID, request models.TaskUpdateRequest) (models.Task, error) {
	return m.updateTaskFn(ctx, studentID, taskID, request)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	return m.deleteTaskFn(ctx, studentID, taskID)
}

func (m *mockTaskService) GetTask(ctx context.Context, studentID, taskID uuid.UUID) (models.Task, error) {
	return m.getTaskFn(ctx, studentID, taskID)
}

func (m *mockTaskService) SearchTasks(ctx context.Context, studentID uuid.UUID, search models.TaskSearch) ([]models.Task, error) {
	return m.searchTasksFn(ctx, studentID, search)
}

func (m *mockTaskService) ToggleTaskStatus(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	return m.toggleTaskStatusFn(ctx, studentID, taskID)
}

// mockDashboardService implements service.DashboardService for handler tests.
type mockDashboardService struct {
	buildDashboardFn func(ctx context.Context, studentID uuid.UUID) (models.Dashboard, error)
	markTaskDoneFn   func(ctx context.Context, studentID, taskID uuid.UUID) (bool, error)
}

func (m *mockDashboardService) BuildDashboard(ctx context.Context, studentID uuid.UUID) (models.Dashboard, error) {
	return m.buildDashboardFn(ctx, studentID)
}

func (m *mockDashboardService) MarkTaskDone(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	return m.markTaskDoneFn(ctx, studentID, taskID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubToken builds a token whose "sub" claim carries the given student ID,
// as the auth middleware expects from a successfully parsed JWT.
func stubToken(studentID uuid.UUID) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   studentID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		SignedString: "stub-signed-token",
		StudentID:    studentID,
	}
}

// authServiceFor returns an auth service mock whose ParseToken always
// authenticates as the given student.
func authServiceFor(studentID uuid.UUID) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return stubToken(studentID), nil
		},
	}
}

// newTestRouter wires the given service mocks into a full router so tests
// exercise the real middleware chain and route table.
func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, logger.Nop()).Init()
}

// doAuthedJSON performs an authenticated request against the router and
// returns the recorded response.
func doAuthedJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer stub-signed-token")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// decodeJSON unmarshals the recorded response body into target.
func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
