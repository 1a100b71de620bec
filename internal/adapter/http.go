package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register. On success the bearer token from the response is
// stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&authResponse).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.Token)
	return authResponse, nil
}

// Login implements [ServerAdapter]. It POSTs the login payload to
// POST /api/auth/login. On success the bearer token from the response is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&authResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.Token)
	return authResponse, nil
}

func (h *httpServerAdapter) CreateSubject(ctx context.Context, request models.SubjectRequest) (models.Subject, error) {
	var subject models.Subject

	resp, err := h.authorized().
		SetContext(ctx).
		SetBody(request).
		SetResult(&subject).
		Post("/api/subjects")
	if err != nil {
		return models.Subject{}, fmt.Errorf("create subject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (h *httpServerAdapter) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject

	resp, err := h.authorized().
		SetContext(ctx).
		SetResult(&subjects).
		Get("/api/subjects")
	if err != nil {
		return nil, fmt.Errorf("list subjects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (h *httpServerAdapter) DeleteSubject(ctx context.Context, subjectID uuid.UUID) (bool, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		Delete("/api/subjects/" + subjectID.String())
	if err != nil {
		return false, fmt.Errorf("delete subject request: %w", err)
	}

	return mapSuccessResponse(resp, "delete subject")
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, request models.TaskCreateRequest) (models.Task, error) {
	var task models.Task

	resp, err := h.authorized().
		SetContext(ctx).
		SetBody(request).
		SetResult(&task).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpServerAdapter) SearchTasks(ctx context.Context, search models.TaskSearch) ([]models.Task, error) {
	var tasks []models.Task

	resp, err := h.authorized().
		SetContext(ctx).
		SetQueryParams(searchQueryParams(search)).
		SetResult(&tasks).
		Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("search tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (h *httpServerAdapter) ToggleTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		Patch("/api/tasks/" + taskID.String() + "/toggle")
	if err != nil {
		return false, fmt.Errorf("toggle task request: %w", err)
	}

	return mapSuccessResponse(resp, "toggle task")
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard

	resp, err := h.authorized().
		SetContext(ctx).
		SetResult(&dashboard).
		Get("/api/dashboard")
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dashboard{}, err
	}

	return dashboard, nil
}

func (h *httpServerAdapter) MarkTaskDone(ctx context.Context, taskID uuid.UUID) (bool, error) {
	resp, err := h.authorized().
		SetContext(ctx).
		Post("/api/dashboard/tasks/" + taskID.String() + "/done")
	if err != nil {
		return false, fmt.Errorf("mark task done request: %w", err)
	}

	return mapSuccessResponse(resp, "mark task done")
}

// authorized returns a request pre-configured with the JSON content type and
// the stored bearer token.
func (h *httpServerAdapter) authorized() *resty.Request {
	request := h.client.R().SetHeader("Content-Type", "application/json")
	if h.token != "" {
		request.SetHeader("Authorization", "Bearer "+h.token)
	}
	return request
}

// mapSuccessResponse translates the server's boolean-outcome responses.
// A 404 with a success envelope means "not found or not owned" and is
// reported as false without an error.
func mapSuccessResponse(resp *resty.Response, operation string) (bool, error) {
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err := mapHTTPError(resp); err != nil {
		return false, fmt.Errorf("%s: %w", operation, err)
	}

	return true, nil
}

// searchQueryParams flattens search criteria into the query-string form the
// task list endpoint expects. Zero values are omitted.
func searchQueryParams(search models.TaskSearch) map[string]string {
	params := make(map[string]string)

	if search.Term != "" {
		params["q"] = search.Term
	}
	if search.SubjectID != nil {
		params["subject_id"] = search.SubjectID.String()
	}
	if search.Status != "" {
		params["status"] = string(search.Status)
	}
	if search.From != nil {
		params["from"] = search.From.Format(time.RFC3339)
	}
	if search.To != nil {
		params["to"] = search.To.Format(time.RFC3339)
	}
	if search.SortBy != "" {
		params["sort"] = string(search.SortBy)
	}
	if search.Order != "" {
		params["order"] = string(search.Order)
	}

	return params
}
