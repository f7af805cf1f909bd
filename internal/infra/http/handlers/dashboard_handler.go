package handlers

import (
	"net/http"

	"github.com/workvine/crm-backend/internal/infra/http/middleware"
	"github.com/workvine/crm-backend/internal/usecase"
)

type DashboardHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	requesterID := ""
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		requesterID = user.ID
	}

	employeeID := r.URL.Query().Get("employeeID")
	date := r.URL.Query().Get("date")

	out, err := h.Dashboard.AdminDashboard(r.Context(), requesterID, employeeID, date)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

func (h *DashboardHandler) User(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dashboard.UserDashboard(r.Context(), r.URL.Query().Get("employeeID"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, out)
}
