package job

import (
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/compensation"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusTerminated Status = "terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusTerminated:
		return true
	}
	return false
}

// Job is a placement: a candidate working for a client company under
// agreed financial terms. For non-monthly payment frequencies HourlyRate
// is the rate used for both salary and billing sides.
type Job struct {
	ID                   string
	OpportunityID        string
	CandidateID          string
	ClientCompany        string
	PartnerCompany       *string
	CandidateSalary      decimal.Decimal
	ClientBillingAmount  decimal.Decimal
	HourlyRate           *decimal.Decimal
	CommissionPercentage *decimal.Decimal
	PaymentFrequency     compensation.Frequency
	PaymentCurrency      string
	StartDate            time.Time
	EndDate              *time.Time
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SalaryBase returns the amount fed into the compensation calculator for
// the candidate side.
func (j Job) SalaryBase() decimal.Decimal {
	if j.PaymentFrequency.Hourly() && j.HourlyRate != nil {
		return *j.HourlyRate
	}
	return j.CandidateSalary
}

// BillingBase returns the amount fed into the compensation calculator for
// the client billing side.
func (j Job) BillingBase() decimal.Decimal {
	if j.PaymentFrequency.Hourly() && j.HourlyRate != nil {
		return *j.HourlyRate
	}
	return j.ClientBillingAmount
}

// JobDetail joins the opportunity and candidate the job points at.
type JobDetail struct {
	Job
	OpportunityTitle string
	CandidateName    string
	CandidateEmail   string
}
