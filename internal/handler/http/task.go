package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), studentID, request)
	if err != nil {
		respondError(w, r, err, "*Handler.createTask")
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	var request models.TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), studentID, taskID, request)
	if err != nil {
		respondError(w, r, err, "*Handler.updateTask")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.TaskService.DeleteTask(r.Context(), studentID, taskID)
	if err != nil {
		respondError(w, r, err, "*Handler.deleteTask")
		return
	}

	if !deleted {
		utils.WriteJSON(w, models.SuccessResponse{Success: false}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), studentID, taskID)
	if err != nil {
		respondError(w, r, err, "*Handler.getTask")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) searchTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	search, err := parseTaskSearch(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchTasks").Msg("invalid search parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := h.services.TaskService.SearchTasks(r.Context(), studentID, search)
	if err != nil {
		respondError(w, r, err, "*Handler.searchTasks")
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	toggled, err := h.services.TaskService.ToggleTaskStatus(r.Context(), studentID, taskID)
	if err != nil {
		respondError(w, r, err, "*Handler.toggleTask")
		return
	}

	if !toggled {
		utils.WriteJSON(w, models.SuccessResponse{Success: false}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// parseTaskSearch builds search criteria from the task list query string.
//
// Recognized parameters:
//
//	q          free-text term matched against title and description
//	subject_id restrict to one subject (UUID)
//	status     all | pending | completed | overdue
//	from, to   deadline window, RFC 3339 or YYYY-MM-DD
//	sort       deadline | title | created | subject
//	order      asc | desc
func parseTaskSearch(r *http.Request) (models.TaskSearch, error) {
	query := r.URL.Query()

	search := models.TaskSearch{
		Term:   query.Get("q"),
		Status: models.TaskStatus(query.Get("status")),
		SortBy: models.TaskSortBy(query.Get("sort")),
		Order:  models.SortOrder(query.Get("order")),
	}

	if rawSubjectID := query.Get("subject_id"); rawSubjectID != "" {
		subjectID, err := uuid.Parse(rawSubjectID)
		if err != nil {
			return models.TaskSearch{}, fmt.Errorf("invalid `subject_id` parameter: %w", err)
		}
		search.SubjectID = &subjectID
	}

	from, err := parseDateParam(query.Get("from"), "from")
	if err != nil {
		return models.TaskSearch{}, err
	}
	search.From = from

	to, err := parseDateParam(query.Get("to"), "to")
	if err != nil {
		return models.TaskSearch{}, err
	}
	search.To = to

	return search, nil
}

// parseDateParam accepts either a full RFC 3339 timestamp or a plain date.
func parseDateParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid `%s` parameter: %w", name, err)
		}
	}

	return &parsed, nil
}
