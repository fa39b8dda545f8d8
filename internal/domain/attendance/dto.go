package attendance

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertDayRequest struct {
	JobID       string
	Year        int
	Month       int
	DayOfMonth  int
	Status      *DayStatus       `json:"status,omitempty"`
	TimeIn      *string          `json:"time_in,omitempty"`
	TimeOut     *string          `json:"time_out,omitempty"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r *UpsertDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	} else if !validator.IsValidDayOfMonth(r.Year, r.Month, r.DayOfMonth) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "is out of range for the given month"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half_day, leave, holiday, weekend"})
	}
	if r.TimeIn != nil && !validator.IsValidTimeOfDay(*r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be a valid time (HH:MM)"})
	}
	if r.TimeOut != nil && !validator.IsValidTimeOfDay(*r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be a valid time (HH:MM)"})
	}
	if r.HoursWorked != nil && r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertMonthlyRequest struct {
	JobID             string          `json:"job_id"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	RegularDaysWorked int             `json:"regular_days_worked"`
	WeekendDaysWorked int             `json:"weekend_days_worked"`
	HolidayDaysWorked int             `json:"holiday_days_worked"`
	LeavesTaken       int             `json:"leaves_taken"`
	OvertimeHours     decimal.Decimal `json:"overtime_hours"`
	Notes             string          `json:"notes"`
}

func (r *UpsertMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{Field: "job_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	}
	if r.RegularDaysWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "regular_days_worked", Message: "must be non-negative"})
	}
	if r.WeekendDaysWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "weekend_days_worked", Message: "must be non-negative"})
	}
	if r.HolidayDaysWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "holiday_days_worked", Message: "must be non-negative"})
	}
	if r.LeavesTaken < 0 {
		errs = append(errs, validator.ValidationError{Field: "leaves_taken", Message: "must be non-negative"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetWorkingDaysRequest struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	WorkingDays int `json:"working_days"`
}

func (r *SetWorkingDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	}
	if r.WorkingDays < 1 || r.WorkingDays > validator.DaysInMonth(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "is out of range for the given month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyAttendanceResponse struct {
	JobID      string       `json:"job_id"`
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	Summary    MonthSummary `json:"summary"`
	Attendance []Day        `json:"attendance"`
}
