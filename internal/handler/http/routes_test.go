package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-planner/smart-planner/internal/service"
)

// TestInit_ProtectedRoutesRequireAuth walks the authenticated route table and
// verifies every endpoint is registered and rejects anonymous requests.
func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: &mockAuthService{}})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/subjects"},
		{http.MethodPost, "/api/subjects"},
		{http.MethodGet, "/api/subjects/00000000-0000-0000-0000-000000000001"},
		{http.MethodPut, "/api/subjects/00000000-0000-0000-0000-000000000001"},
		{http.MethodDelete, "/api/subjects/00000000-0000-0000-0000-000000000001"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks/00000000-0000-0000-0000-000000000001"},
		{http.MethodPut, "/api/tasks/00000000-0000-0000-0000-000000000001"},
		{http.MethodDelete, "/api/tasks/00000000-0000-0000-0000-000000000001"},
		{http.MethodPatch, "/api/tasks/00000000-0000-0000-0000-000000000001/toggle"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPost, "/api/dashboard/tasks/00000000-0000-0000-0000-000000000001/done"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			request := httptest.NewRequest(route.method, route.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

// TestInit_AuthRoutesArePublic verifies that register and login are reachable
// without an Authorization header.
func TestInit_AuthRoutesArePublic(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: &mockAuthService{}})

	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		t.Run(path, func(t *testing.T) {
			recorder := doJSON(t, router, http.MethodPost, path, `not json`)

			// a JSON decoding failure, not a 401: the route was reached
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: &mockAuthService{}})

	request := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
