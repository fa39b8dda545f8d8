package job

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/compensation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateJobRequest struct {
	OpportunityID        string                 `json:"opportunity_id"`
	CandidateID          string                 `json:"candidate_id"`
	ClientCompany        string                 `json:"client_company"`
	PartnerCompany       *string                `json:"partner_company,omitempty"`
	CandidateSalary      decimal.Decimal        `json:"candidate_salary"`
	ClientBillingAmount  decimal.Decimal        `json:"client_billing_amount"`
	HourlyRate           *decimal.Decimal       `json:"hourly_rate,omitempty"`
	CommissionPercentage *decimal.Decimal       `json:"commission_percentage,omitempty"`
	PaymentFrequency     compensation.Frequency `json:"payment_frequency"`
	PaymentCurrency      *string                `json:"payment_currency,omitempty"`
	StartDate            string                 `json:"start_date"`
	EndDate              *string                `json:"end_date,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OpportunityID) {
		errs = append(errs, validator.ValidationError{Field: "opportunity_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ClientCompany) {
		errs = append(errs, validator.ValidationError{Field: "client_company", Message: "is required"})
	}
	if r.CandidateSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "candidate_salary", Message: "must be non-negative"})
	}
	if r.ClientBillingAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "client_billing_amount", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.CommissionPercentage != nil {
		if r.CommissionPercentage.IsNegative() || r.CommissionPercentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "commission_percentage", Message: "must be between 0 and 100"})
		}
	}
	if !r.PaymentFrequency.Valid() {
		errs = append(errs, validator.ValidationError{Field: "payment_frequency", Message: "must be one of monthly, bi-weekly, weekly"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil && !validator.IsValidDate(*r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobRequest struct {
	ID                   string
	ClientCompany        *string                 `json:"client_company,omitempty"`
	PartnerCompany       *string                 `json:"partner_company,omitempty"`
	CandidateSalary      *decimal.Decimal        `json:"candidate_salary,omitempty"`
	ClientBillingAmount  *decimal.Decimal        `json:"client_billing_amount,omitempty"`
	HourlyRate           *decimal.Decimal        `json:"hourly_rate,omitempty"`
	CommissionPercentage *decimal.Decimal        `json:"commission_percentage,omitempty"`
	PaymentFrequency     *compensation.Frequency `json:"payment_frequency,omitempty"`
	PaymentCurrency      *string                 `json:"payment_currency,omitempty"`
	StartDate            *string                 `json:"start_date,omitempty"`
	EndDate              *string                 `json:"end_date,omitempty"`
	Status               *Status                 `json:"status,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CandidateSalary != nil && r.CandidateSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "candidate_salary", Message: "must be non-negative"})
	}
	if r.ClientBillingAmount != nil && r.ClientBillingAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "client_billing_amount", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.CommissionPercentage != nil {
		if r.CommissionPercentage.IsNegative() || r.CommissionPercentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "commission_percentage", Message: "must be between 0 and 100"})
		}
	}
	if r.PaymentFrequency != nil && !r.PaymentFrequency.Valid() {
		errs = append(errs, validator.ValidationError{Field: "payment_frequency", Message: "must be one of monthly, bi-weekly, weekly"})
	}
	if r.StartDate != nil && !validator.IsValidDate(*r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil && !validator.IsValidDate(*r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, completed, terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProfitMarginResponse mirrors the per-job profit endpoint.
type ProfitMarginResponse struct {
	JobID               string          `json:"job_id"`
	OpportunityTitle    string          `json:"opportunity_title"`
	CandidateName       string          `json:"candidate_name"`
	CandidateSalary     decimal.Decimal `json:"candidate_salary"`
	ClientBillingAmount decimal.Decimal `json:"client_billing_amount"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"`
	ProfitPercentage    decimal.Decimal `json:"profit_percentage"`
	PaymentFrequency    string          `json:"payment_frequency"`
	PaymentCurrency     string          `json:"payment_currency"`
	StartDate           string          `json:"start_date"`
	EndDate             *string         `json:"end_date,omitempty"`
	DaysDuration        int             `json:"days_duration"`
}

// ActiveJobsSummary aggregates financial totals over active jobs.
type ActiveJobsSummary struct {
	TotalActiveJobs     int64           `json:"total_active_jobs"`
	TotalBillingAmount  decimal.Decimal `json:"total_billing_amount"`
	TotalSalaryCost     decimal.Decimal `json:"total_salary_cost"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	AvgProfitPercentage decimal.Decimal `json:"avg_profit_percentage"`
}
