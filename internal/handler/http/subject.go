package http

import (
	"encoding/json"
	"net/http"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/models"
)

func (h *Handler) createSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createSubject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	subject, err := h.services.SubjectService.CreateSubject(r.Context(), studentID, request)
	if err != nil {
		respondError(w, r, err, "*Handler.createSubject")
		return
	}

	utils.WriteJSON(w, subject, http.StatusCreated)
}

func (h *Handler) updateSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	subjectID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	var request models.SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateSubject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	subject, err := h.services.SubjectService.UpdateSubject(r.Context(), studentID, subjectID, request)
	if err != nil {
		respondError(w, r, err, "*Handler.updateSubject")
		return
	}

	utils.WriteJSON(w, subject, http.StatusOK)
}

func (h *Handler) deleteSubject(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	subjectID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.SubjectService.DeleteSubject(r.Context(), studentID, subjectID)
	if err != nil {
		respondError(w, r, err, "*Handler.deleteSubject")
		return
	}

	if !deleted {
		utils.WriteJSON(w, models.SuccessResponse{Success: false}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) getSubject(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	subjectID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	subject, err := h.services.SubjectService.GetSubject(r.Context(), studentID, subjectID)
	if err != nil {
		respondError(w, r, err, "*Handler.getSubject")
		return
	}

	utils.WriteJSON(w, subject, http.StatusOK)
}

func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	subjects, err := h.services.SubjectService.ListSubjects(r.Context(), studentID)
	if err != nil {
		respondError(w, r, err, "*Handler.listSubjects")
		return
	}

	utils.WriteJSON(w, subjects, http.StatusOK)
}
