package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/escalation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type EscalationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type EscalationHandlerImpl struct {
	escalationService escalation.EscalationService
}

func NewEscalationHandler(escalationService escalation.EscalationService) EscalationHandler {
	return &EscalationHandlerImpl{escalationService: escalationService}
}

// Create implements EscalationHandler
func (h *EscalationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req escalation.CreateEscalationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.escalationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to record escalation", "candidate_id", req.CandidateID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Escalation recorded successfully", created)
}

// List implements EscalationHandler
func (h *EscalationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.escalationService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list escalations", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Resolve implements EscalationHandler
func (h *EscalationHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req escalation.ResolveEscalationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resolved, err := h.escalationService.Resolve(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to resolve escalation", "escalation_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Escalation resolved successfully", resolved)
}
