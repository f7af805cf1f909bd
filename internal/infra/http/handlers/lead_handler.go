package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workvine/crm-backend/internal/infra/http/middleware"
	"github.com/workvine/crm-backend/internal/usecase"
)

type LeadHandler struct {
	Leads *usecase.LeadUseCase
}

func NewLeadHandler(leads *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{Leads: leads}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	lead, err := h.Leads.Create(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Leads.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	lead, err := h.Leads.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "lead deleted"})
}

type updateStageRequest struct {
	StageName string `json:"stageName"`
}

func (h *LeadHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	var req updateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	lead, err := h.Leads.ChangeStage(r.Context(), chi.URLParam(r, "id"), req.StageName)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}
