package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/utils"
)

// studentIDFromRequest returns the authenticated student's ID placed into the
// request context by the auth middleware. When the ID is absent the request
// is rejected with 401 and false is returned; handlers must stop processing.
func studentIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	studentID, ok := utils.GetStudentIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no student ID found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return uuid.Nil, false
	}

	return studentID, true
}

// idParamFromRequest parses the "{id}" URL parameter as a UUID. When the
// value is malformed the request is rejected with 400 and false is returned.
func idParamFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid id URL parameter")
		http.Error(w, "invalid id URL parameter", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}
