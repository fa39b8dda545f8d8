package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ProfitMargin(w http.ResponseWriter, r *http.Request)
	ActiveSummary(w http.ResponseWriter, r *http.Request)
	FinanceDetail(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// Create implements JobHandler
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create job", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created successfully", created)
}

// GetByID implements JobHandler
func (h *JobHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements JobHandler
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.jobService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list jobs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements JobHandler
func (h *JobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.jobService.Update(r.Context(), req); err != nil {
		slog.Error("Failed to update job", "job_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job updated successfully", nil)
}

// Delete implements JobHandler
func (h *JobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete job", "job_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}

// ProfitMargin implements JobHandler
func (h *JobHandlerImpl) ProfitMargin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.jobService.ProfitMargin(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ActiveSummary implements JobHandler
func (h *JobHandlerImpl) ActiveSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ActiveSummary(r.Context())
	if err != nil {
		slog.Error("Failed to summarize active jobs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FinanceDetail implements JobHandler
func (h *JobHandlerImpl) FinanceDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.jobService.FinanceDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
