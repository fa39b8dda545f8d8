package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type CandidateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Match(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
}

type CandidateHandlerImpl struct {
	candidateService candidate.CandidateService
}

func NewCandidateHandler(candidateService candidate.CandidateService) CandidateHandler {
	return &CandidateHandlerImpl{candidateService: candidateService}
}

func toCandidateResponse(c candidate.Candidate) candidate.CandidateResponse {
	return candidate.CandidateResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		LinkedIn:        c.LinkedIn,
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		ExpectedSalary:  c.ExpectedSalary,
		ResumeLinks:     c.ResumeLinks,
		TrustScore:      c.TrustScore,
	}
}

// Create implements CandidateHandler
func (h *CandidateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req candidate.CreateCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.candidateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create candidate", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", toCandidateResponse(created))
}

// GetByID implements CandidateHandler
func (h *CandidateHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.candidateService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toCandidateResponse(result))
}

// List implements CandidateHandler
func (h *CandidateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.candidateService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list candidates", "error", err)
		response.HandleError(w, err)
		return
	}

	total, err := h.candidateService.Count(r.Context())
	if err != nil {
		slog.Error("Failed to count candidates", "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]candidate.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, toCandidateResponse(c))
	}

	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: total})
}

// Update implements CandidateHandler
func (h *CandidateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpdateCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.candidateService.Update(r.Context(), req); err != nil {
		slog.Error("Failed to update candidate", "candidate_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated successfully", nil)
}

// Delete implements CandidateHandler
func (h *CandidateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.candidateService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete candidate", "candidate_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// Match implements CandidateHandler
func (h *CandidateHandlerImpl) Match(w http.ResponseWriter, r *http.Request) {
	var req candidate.MatchCandidatesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	matches, err := h.candidateService.Match(r.Context(), req)
	if err != nil {
		slog.Error("Failed to match candidates", "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]candidate.CandidateResponse, 0, len(matches))
	for _, c := range matches {
		results = append(results, toCandidateResponse(c))
	}

	response.Success(w, results)
}

// UploadResume implements CandidateHandler
func (h *CandidateHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("resume")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Resume file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	link, err := h.candidateService.UploadResume(r.Context(), id, file, fileHeader.Filename)
	if err != nil {
		slog.Error("Failed to upload resume", "candidate_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resume uploaded successfully", map[string]string{"resume_link": link})
}
