package invoice

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/compensation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePartnerInvoiceRequest struct {
	PartnerCompanyID string `json:"partner_company_id"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
}

func (r *GeneratePartnerInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PartnerCompanyID) {
		errs = append(errs, validator.ValidationError{Field: "partner_company_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateJobSetInvoiceRequest struct {
	Year   int      `json:"year"`
	Month  int      `json:"month"`
	JobIDs []string `json:"job_ids"`
}

func (r *GenerateJobSetInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	}
	if len(r.JobIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "job_ids", Message: "at least one job id is required"})
	}
	for _, id := range r.JobIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "job_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LineItemResponse mirrors the per-job lines of the rendered document.
type LineItemResponse struct {
	JobID          string          `json:"job_id"`
	CandidateName  string          `json:"candidate_name"`
	BillingCompany string          `json:"billing_company"`
	PresentDays    int             `json:"present_days"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	BilledAmount   decimal.Decimal `json:"billed_amount"`
	SalaryAmount   decimal.Decimal `json:"salary_amount"`
}

type InvoiceResponse struct {
	ID                 string             `json:"id"`
	Scope              string             `json:"scope"`
	Period             Period             `json:"period"`
	TotalBillingAmount decimal.Decimal    `json:"total_billing_amount"`
	TotalSalaryAmount  decimal.Decimal    `json:"total_salary_amount"`
	TotalCommission    decimal.Decimal    `json:"total_commission"`
	NetProfit          decimal.Decimal    `json:"net_profit"`
	StorageLocator     string             `json:"storage_locator,omitempty"`
	LineItems          []LineItemResponse `json:"line_items"`
	SkippedJobs        []JobDiagnostic    `json:"skipped_jobs,omitempty"`
	DocumentPending    bool               `json:"document_pending,omitempty"`
}

// SingleJobInvoiceDetail carries the full component breakdown the
// single-job endpoint reports alongside the committed invoice.
type SingleJobInvoiceDetail struct {
	Period     Period              `json:"period"`
	Attendance AttendanceEcho      `json:"attendance"`
	Billing    compensation.Result `json:"billing"`
	Salary     compensation.Result `json:"salary"`
	Commission decimal.Decimal     `json:"commission"`
	NetProfit  decimal.Decimal     `json:"net_profit"`
}

// AttendanceEcho repeats the attendance inputs an invoice was computed
// from.
type AttendanceEcho struct {
	RegularDays   int             `json:"regular_days"`
	WeekendDays   int             `json:"weekend_days"`
	HolidayDays   int             `json:"holiday_days"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	LeavesTaken   int             `json:"leaves_taken"`
}
