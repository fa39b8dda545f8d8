package candidate

import (
	"time"

	"github.com/shopspring/decimal"
)

type Candidate struct {
	ID              string
	Name            string
	Email           string
	Phone           *string
	LinkedIn        *string
	Skills          []string
	ExperienceYears int
	ExpectedSalary  *decimal.Decimal
	ResumeLinks     []string
	TrustScore      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TrustScoreEvent is emitted by the payment and escalation flows and
// consumed by the trust-score component. The invoice flow never emits one.
type TrustScoreEvent struct {
	CandidateID string
	Delta       int
	Reason      string
	OccurredAt  time.Time
}

const (
	TrustScoreMin = 0
	TrustScoreMax = 100
)
