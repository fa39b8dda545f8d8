package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
)

type InvoiceHandler interface {
	GenerateForJob(w http.ResponseWriter, r *http.Request)
	GenerateForPartner(w http.ResponseWriter, r *http.Request)
	GenerateForJobSet(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	RetryDocument(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

func periodFromURL(r *http.Request) (invoice.Period, bool) {
	year, okY := urlParamInt(r, "year")
	month, okM := urlParamInt(r, "month")
	if !okY || !okM {
		return invoice.Period{}, false
	}
	return invoice.Period{Year: year, Month: month}, true
}

// GenerateForJob implements InvoiceHandler
func (h *InvoiceHandlerImpl) GenerateForJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	p, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}
	if !validator.IsValidPeriod(p.Year, p.Month) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"},
		})
		return
	}

	inv, detail, err := h.invoiceService.GenerateForJob(r.Context(), jobID, p)
	if err != nil {
		slog.Error("Failed to generate job invoice", "job_id", jobID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice generated successfully", map[string]interface{}{
		"invoice":   inv,
		"breakdown": detail,
	})
}

// GenerateForPartner implements InvoiceHandler
func (h *InvoiceHandlerImpl) GenerateForPartner(w http.ResponseWriter, r *http.Request) {
	var req invoice.GeneratePartnerInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	inv, err := h.invoiceService.GenerateForPartner(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate partner invoice", "partner", req.PartnerCompanyID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice generated successfully", inv)
}

// GenerateForJobSet implements InvoiceHandler
func (h *InvoiceHandlerImpl) GenerateForJobSet(w http.ResponseWriter, r *http.Request) {
	var req invoice.GenerateJobSetInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	inv, err := h.invoiceService.GenerateForJobSet(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate job-set invoice", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice generated successfully", inv)
}

// GetByID implements InvoiceHandler
func (h *InvoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByPeriod implements InvoiceHandler
func (h *InvoiceHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	p, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	results, err := h.invoiceService.ListByPeriod(r.Context(), p)
	if err != nil {
		slog.Error("Failed to list invoices", "year", p.Year, "month", p.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// RetryDocument implements InvoiceHandler
func (h *InvoiceHandlerImpl) RetryDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	locator, err := h.invoiceService.RetryDocument(r.Context(), id)
	if err != nil {
		slog.Error("Failed to regenerate invoice document", "invoice_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice document regenerated successfully", map[string]string{"storage_locator": locator})
}

// DownloadDocument implements InvoiceHandler
func (h *InvoiceHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, contentType, filename, err := h.invoiceService.Document(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, body); err != nil {
		slog.Error("Failed to stream invoice document", "invoice_id", id, "error", err)
	}
}
