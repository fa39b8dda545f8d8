package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/certificate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type CertificateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListHolders(w http.ResponseWriter, r *http.Request)
	ListByCandidate(w http.ResponseWriter, r *http.Request)
	AssignToCandidate(w http.ResponseWriter, r *http.Request)
}

type CertificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &CertificateHandlerImpl{certificateService: certificateService}
}

func toCertificateResponse(c certificate.Certificate) certificate.CertificateResponse {
	return certificate.CertificateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Provider:  c.Provider,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toCertificateResponses(certificates []certificate.Certificate) []certificate.CertificateResponse {
	results := make([]certificate.CertificateResponse, 0, len(certificates))
	for _, c := range certificates {
		results = append(results, toCertificateResponse(c))
	}
	return results
}

// Create implements CertificateHandler
func (h *CertificateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req certificate.CreateCertificateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.certificateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create certificate", "name", req.Name, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certificate created successfully", toCertificateResponse(created))
}

// GetByID implements CertificateHandler
func (h *CertificateHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.certificateService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toCertificateResponse(c))
}

// List implements CertificateHandler
func (h *CertificateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list certificates", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toCertificateResponses(certificates))
}

// Update implements CertificateHandler
func (h *CertificateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req certificate.UpdateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.certificateService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to update certificate", "certificate_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate updated successfully", toCertificateResponse(updated))
}

// Delete implements CertificateHandler
func (h *CertificateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.certificateService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete certificate", "certificate_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate deleted successfully", nil)
}

// ListHolders implements CertificateHandler
func (h *CertificateHandlerImpl) ListHolders(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	holders, err := h.certificateService.ListHolders(r.Context(), id)
	if err != nil {
		slog.Error("Failed to list certificate holders", "certificate_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holders)
}

// ListByCandidate implements CertificateHandler
func (h *CertificateHandlerImpl) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "id")

	certificates, err := h.certificateService.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toCertificateResponses(certificates))
}

// AssignToCandidate implements CertificateHandler
func (h *CertificateHandlerImpl) AssignToCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "id")

	var req certificate.AssignCertificatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.certificateService.AssignToCandidate(r.Context(), candidateID, req); err != nil {
		slog.Error("Failed to assign certificates", "candidate_id", candidateID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificates updated successfully", nil)
}
