package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ScopeKind string

const (
	ScopeSingleJob ScopeKind = "single_job"
	ScopePartner   ScopeKind = "partner"
	ScopeJobIDs    ScopeKind = "job_ids"
)

// Scope selects which jobs enter one invoice aggregation. Exactly one
// of JobID, PartnerCompany, or JobIDs is meaningful depending on Kind.
type Scope struct {
	Kind           ScopeKind
	JobID          string
	PartnerCompany string
	JobIDs         []string
}

func SingleJobScope(jobID string) Scope {
	return Scope{Kind: ScopeSingleJob, JobID: jobID}
}

func PartnerScope(partnerCompany string) Scope {
	return Scope{Kind: ScopePartner, PartnerCompany: partnerCompany}
}

func JobIDsScope(jobIDs []string) Scope {
	return Scope{Kind: ScopeJobIDs, JobIDs: jobIDs}
}

// Label is the human-readable scope heading used on rendered documents.
func (s Scope) Label() string {
	switch s.Kind {
	case ScopeSingleJob:
		return fmt.Sprintf("Job %s", s.JobID)
	case ScopePartner:
		return fmt.Sprintf("Partner %s", s.PartnerCompany)
	default:
		return fmt.Sprintf("Job set (%d jobs)", len(s.JobIDs))
	}
}

// Key is the scope discriminator value persisted next to the kind.
func (s Scope) Key() string {
	switch s.Kind {
	case ScopeSingleJob:
		return s.JobID
	case ScopePartner:
		return s.PartnerCompany
	default:
		return ""
	}
}

// Period identifies one billing cycle.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

// LineItem is one job's contribution to an invoice. Amounts are
// snapshotted at commit so later rate changes never rewrite history.
type LineItem struct {
	ID             string
	InvoiceID      string
	JobID          string
	CandidateName  string
	BillingCompany string
	PresentDays    int
	TotalHours     decimal.Decimal
	BilledAmount   decimal.Decimal
	SalaryAmount   decimal.Decimal
}

type SkipReason string

const (
	SkipNotFound          SkipReason = "not_found"
	SkipMissingAttendance SkipReason = "missing_attendance"
)

// JobDiagnostic records a job dropped from a multi-job aggregation.
type JobDiagnostic struct {
	JobID  string     `json:"job_id"`
	Reason SkipReason `json:"reason"`
}

// Invoice is the aggregate the sink persists. StorageLocator stays
// empty until a rendered document has been stored.
type Invoice struct {
	ID                 string
	ScopeKind          ScopeKind
	ScopeKey           string
	Period             Period
	TotalBillingAmount decimal.Decimal
	TotalSalaryAmount  decimal.Decimal
	TotalCommission    decimal.Decimal
	NetProfit          decimal.Decimal
	StorageLocator     string
	LineItems          []LineItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
