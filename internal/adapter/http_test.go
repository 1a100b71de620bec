package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, err := NewHTTPServerAdapter(server.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ─────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare host:port", "localhost:8080", "http://localhost:8080", false},
		{"full url", "https://planner.example.com/", "https://planner.example.com", false},
		{"surrounding whitespace", "  localhost:8080  ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter("", time.Second, logger.Nop())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// Auth flow
// ─────────────────────────────────────────────

func TestHTTPServerAdapter_Register_StoresToken(t *testing.T) {
	studentID := uuid.New()

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var request models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "ada@example.com", request.Email)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			StudentID: studentID,
			Name:      "Ada",
			Token:     "issued-token",
		})
	})

	response, err := a.Register(context.Background(), models.RegisterRequest{
		Email:           "ada@example.com",
		Name:            "Ada",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, studentID, response.StudentID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestHTTPServerAdapter_Login_WrongCredentials(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
	})

	_, err := a.Login(context.Background(), models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ─────────────────────────────────────────────
// Authenticated calls
// ─────────────────────────────────────────────

func TestHTTPServerAdapter_CreateSubject_SendsBearerToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusCreated, models.Subject{ID: uuid.New(), Name: "Algebra"})
	})
	a.SetToken("issued-token")

	subject, err := a.CreateSubject(context.Background(), models.SubjectRequest{Name: "Algebra"})

	require.NoError(t, err)
	assert.Equal(t, "Algebra", subject.Name)
}

func TestHTTPServerAdapter_CreateSubject_Conflict(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "subject name is already in use", http.StatusConflict)
	})
	a.SetToken("issued-token")

	_, err := a.CreateSubject(context.Background(), models.SubjectRequest{Name: "Algebra"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPServerAdapter_SearchTasks_QueryParams(t *testing.T) {
	subjectID := uuid.New()

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "algebra", query.Get("q"))
		assert.Equal(t, subjectID.String(), query.Get("subject_id"))
		assert.Equal(t, "pending", query.Get("status"))
		assert.Equal(t, "title", query.Get("sort"))
		assert.Equal(t, "desc", query.Get("order"))
		assert.Empty(t, query.Get("from"))

		writeJSON(t, w, http.StatusOK, []models.Task{{ID: uuid.New(), Title: "Finish essay"}})
	})
	a.SetToken("issued-token")

	tasks, err := a.SearchTasks(context.Background(), models.TaskSearch{
		Term:      "algebra",
		SubjectID: &subjectID,
		Status:    models.StatusPending,
		SortBy:    models.SortByTitle,
		Order:     models.OrderDesc,
	})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Finish essay", tasks[0].Title)
}

func TestHTTPServerAdapter_DeleteSubject(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		want    bool
		wantErr error
	}{
		{"deleted", http.StatusOK, models.SuccessResponse{Success: true}, true, nil},
		{"missing reports false without error", http.StatusNotFound, models.SuccessResponse{Success: false}, false, nil},
		{"conflict while tasks remain", http.StatusConflict, nil, false, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				if tt.body != nil {
					writeJSON(t, w, tt.status, tt.body)
					return
				}
				http.Error(w, "subject has tasks and cannot be deleted", tt.status)
			})
			a.SetToken("issued-token")

			deleted, err := a.DeleteSubject(context.Background(), uuid.New())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, deleted)
		})
	}
}

func TestHTTPServerAdapter_Dashboard(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard", r.URL.Path)

		writeJSON(t, w, http.StatusOK, models.Dashboard{
			TodayTasks:         []models.Task{{ID: uuid.New(), Title: "Finish essay"}},
			UpcomingTasks:      []models.Task{},
			TotalTasks:         3,
			CompletedTasks:     1,
			ProgressPercentage: 33.3,
		})
	})
	a.SetToken("issued-token")

	dashboard, err := a.Dashboard(context.Background())

	require.NoError(t, err)
	require.Len(t, dashboard.TodayTasks, 1)
	assert.Equal(t, 3, dashboard.TotalTasks)
	assert.InDelta(t, 33.3, dashboard.ProgressPercentage, 0.001)
}

func TestHTTPServerAdapter_MarkTaskDone_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.SuccessResponse{Success: false})
	})
	a.SetToken("issued-token")

	marked, err := a.MarkTaskDone(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, marked)
}

func TestHTTPServerAdapter_InternalServerError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
	a.SetToken("issued-token")

	_, err := a.ListSubjects(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}
