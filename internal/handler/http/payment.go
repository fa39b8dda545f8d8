package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/payment"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// Create implements PaymentHandler
func (h *PaymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.paymentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to record payment", "candidate_id", req.CandidateID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded successfully", created)
}

// List implements PaymentHandler
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.paymentService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list payments", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MonthlyReport implements PaymentHandler
func (h *PaymentHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req payment.MonthlyReportRequest
	var ok bool

	if req.Year, ok = urlParamInt(r, "year"); !ok {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	if req.Month, ok = urlParamInt(r, "month"); !ok {
		response.BadRequest(w, "Month must be a number", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.paymentService.MonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("Failed to build monthly report", "year", req.Year, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
