package escalation

import "time"

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
)

type Escalation struct {
	ID             string
	CandidateID    string
	JobID          string
	Reason         string
	Status         string
	Resolution     *string
	EscalationDate time.Time
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}
