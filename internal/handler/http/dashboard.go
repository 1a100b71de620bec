package http

import (
	"net/http"

	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	dashboard, err := h.services.DashboardService.BuildDashboard(r.Context(), studentID)
	if err != nil {
		respondError(w, r, err, "*Handler.dashboard")
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) markTaskDone(w http.ResponseWriter, r *http.Request) {
	studentID, ok := studentIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, ok := idParamFromRequest(w, r)
	if !ok {
		return
	}

	marked, err := h.services.DashboardService.MarkTaskDone(r.Context(), studentID, taskID)
	if err != nil {
		respondError(w, r, err, "*Handler.markTaskDone")
		return
	}

	if !marked {
		utils.WriteJSON(w, models.SuccessResponse{Success: false}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
