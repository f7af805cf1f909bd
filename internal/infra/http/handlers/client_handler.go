package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workvine/crm-backend/internal/entity"
	"github.com/workvine/crm-backend/internal/infra/http/middleware"
	"github.com/workvine/crm-backend/internal/usecase"
)

type ClientHandler struct {
	CreateUC  *usecase.CreateClientUseCase
	UpdateUC  *usecase.UpdateClientUseCase
	ConvertUC *usecase.ConvertLeadUseCase
	Clients   usecase.ClientRepository
}

func NewClientHandler(createUC *usecase.CreateClientUseCase, updateUC *usecase.UpdateClientUseCase, convertUC *usecase.ConvertLeadUseCase, clients usecase.ClientRepository) *ClientHandler {
	return &ClientHandler{
		CreateUC:  createUC,
		UpdateUC:  updateUC,
		ConvertUC: convertUC,
		Clients:   clients,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	client, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordClientCreated("direct")
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) ConvertFromLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")
	if leadID == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	client, err := h.ConvertUC.Execute(r.Context(), leadID)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadConverted()
	middleware.RecordClientCreated("conversion")
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.FindAll(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	client, err := h.Clients.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrClientNotFound) {
		respondError(w, http.StatusNotFound, usecase.CodeClientNotFound, "client not found")
		return
	}
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	client, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}
