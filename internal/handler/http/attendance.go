package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	UpsertDay(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	MonthlyView(w http.ResponseWriter, r *http.Request)
	UpsertMonthly(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	SetWorkingDays(w http.ResponseWriter, r *http.Request)
	ListWorkingDays(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func urlParamInt(r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	return v, err == nil
}

// UpsertDay implements AttendanceHandler
func (h *AttendanceHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertDayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.JobID = chi.URLParam(r, "jobId")
	var ok bool
	if req.Year, ok = urlParamInt(r, "year"); !ok {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	if req.Month, ok = urlParamInt(r, "month"); !ok {
		response.BadRequest(w, "Month must be a number", nil)
		return
	}
	if req.DayOfMonth, ok = urlParamInt(r, "day"); !ok {
		response.BadRequest(w, "Day must be a number", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.attendanceService.UpsertDay(r.Context(), req)
	if err != nil {
		slog.Error("Failed to upsert attendance day", "job_id", req.JobID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", day)
}

// GetDay implements AttendanceHandler
func (h *AttendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	year, okY := urlParamInt(r, "year")
	month, okM := urlParamInt(r, "month")
	day, okD := urlParamInt(r, "day")
	if !okY || !okM || !okD {
		response.BadRequest(w, "Year, month and day must be numbers", nil)
		return
	}

	result, err := h.attendanceService.GetDayByDate(r.Context(), jobID, year, month, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyView implements AttendanceHandler
func (h *AttendanceHandlerImpl) MonthlyView(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	year, okY := urlParamInt(r, "year")
	month, okM := urlParamInt(r, "month")
	if !okY || !okM {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	result, err := h.attendanceService.MonthlyView(r.Context(), jobID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertMonthly implements AttendanceHandler
func (h *AttendanceHandlerImpl) UpsertMonthly(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertMonthlyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown, err := h.attendanceService.UpsertMonthly(r.Context(), req)
	if err != nil {
		slog.Error("Failed to upsert monthly attendance", "job_id", req.JobID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly attendance recorded successfully", breakdown)
}

// GetMonthly implements AttendanceHandler
func (h *AttendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	year, okY := urlParamInt(r, "year")
	month, okM := urlParamInt(r, "month")
	if !okY || !okM {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	breakdown, calendar, err := h.attendanceService.GetMonthly(r.Context(), jobID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"attendance":   breakdown,
		"working_days": calendar.WorkingDays,
	})
}

// SetWorkingDays implements AttendanceHandler
func (h *AttendanceHandlerImpl) SetWorkingDays(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetWorkingDaysRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	calendar, err := h.attendanceService.SetWorkingDays(r.Context(), req)
	if err != nil {
		slog.Error("Failed to set working days", "year", req.Year, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working days set successfully", calendar)
}

// ListWorkingDays implements AttendanceHandler
func (h *AttendanceHandlerImpl) ListWorkingDays(w http.ResponseWriter, r *http.Request) {
	year, ok := urlParamInt(r, "year")
	if !ok {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}

	calendars, err := h.attendanceService.ListWorkingDays(r.Context(), year)
	if err != nil {
		slog.Error("Failed to list working days", "year", year, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendars)
}
