package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/opportunity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type OpportunityHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	LinkCandidate(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	ListOpportunitiesForCandidate(w http.ResponseWriter, r *http.Request)
	UpdateLink(w http.ResponseWriter, r *http.Request)
}

type OpportunityHandlerImpl struct {
	opportunityService opportunity.OpportunityService
}

func NewOpportunityHandler(opportunityService opportunity.OpportunityService) OpportunityHandler {
	return &OpportunityHandlerImpl{opportunityService: opportunityService}
}

// Create implements OpportunityHandler
func (h *OpportunityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req opportunity.CreateOpportunityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.opportunityService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create opportunity", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Opportunity created successfully", created)
}

// GetByID implements OpportunityHandler
func (h *OpportunityHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.opportunityService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OpportunityHandler
func (h *OpportunityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *opportunity.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := opportunity.Status(s)
		if !st.Valid() {
			response.HandleError(w, opportunity.ErrInvalidStatus)
			return
		}
		status = &st
	}

	results, err := h.opportunityService.List(r.Context(), status)
	if err != nil {
		slog.Error("Failed to list opportunities", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements OpportunityHandler
func (h *OpportunityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req opportunity.UpdateOpportunityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.opportunityService.Update(r.Context(), req); err != nil {
		slog.Error("Failed to update opportunity", "opportunity_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Opportunity updated successfully", nil)
}

// Delete implements OpportunityHandler
func (h *OpportunityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.opportunityService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete opportunity", "opportunity_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Opportunity deleted successfully", nil)
}

func toCandidateLinkResponse(l opportunity.CandidateLink) opportunity.CandidateLinkResponse {
	return opportunity.CandidateLinkResponse{
		ID:             l.ID,
		OpportunityID:  l.OpportunityID,
		CandidateID:    l.CandidateID,
		ResumeURL:      l.ResumeURL,
		OfferedSalary:  l.OfferedSalary,
		ReferralUserID: l.ReferralUserID,
		Status:         l.Status,
	}
}

// LinkCandidate implements OpportunityHandler
func (h *OpportunityHandlerImpl) LinkCandidate(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "id")

	var req opportunity.LinkCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	link, err := h.opportunityService.LinkCandidate(r.Context(), opportunityID, req)
	if err != nil {
		slog.Error("Failed to link candidate to opportunity", "opportunity_id", opportunityID, "candidate_id", req.CandidateID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate linked to opportunity successfully", toCandidateLinkResponse(link))
}

// ListCandidates implements OpportunityHandler
func (h *OpportunityHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "id")

	details, err := h.opportunityService.ListCandidates(r.Context(), opportunityID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// ListOpportunitiesForCandidate implements OpportunityHandler
func (h *OpportunityHandlerImpl) ListOpportunitiesForCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "id")

	details, err := h.opportunityService.ListOpportunitiesForCandidate(r.Context(), candidateID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// UpdateLink implements OpportunityHandler
func (h *OpportunityHandlerImpl) UpdateLink(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkId")

	var req opportunity.UpdateCandidateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.opportunityService.UpdateLink(r.Context(), linkID, req)
	if err != nil {
		slog.Error("Failed to update candidate link", "link_id", linkID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate opportunity details updated successfully", toCandidateLinkResponse(updated))
}
