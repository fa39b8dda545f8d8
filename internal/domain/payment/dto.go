package payment

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	CandidateID   string          `json:"candidate_id"`
	JobID         string          `json:"job_id"`
	Salary        decimal.Decimal `json:"salary"`
	ClientPayment decimal.Decimal `json:"client_payment"`
	PaymentDate   string          `json:"payment_date"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "is required"})
	}
	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{Field: "job_id", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.ClientPayment.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "client_payment", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.PaymentDate) {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "is required"})
	} else if !validator.IsValidDate(r.PaymentDate) {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportRequest struct {
	Year  int
	Month int
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year must be between 2020 and 2100 and month between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
