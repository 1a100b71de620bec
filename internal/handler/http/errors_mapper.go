package http

import (
	"errors"
	"net/http"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/service"
	"github.com/smart-planner/smart-planner/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrDeadlineInPast:          http.StatusBadRequest,
	service.ErrSubjectNotOwned:         http.StatusBadRequest,
	service.ErrSubjectHasTasks:         http.StatusConflict,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoStudentWasFound:  http.StatusNotFound,
	store.ErrSubjectNameTaken:   http.StatusConflict,
	store.ErrSubjectNotFound:    http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service or storage error into an HTTP status and
// writes the response. Internal errors are masked with the generic status
// text so storage details never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
