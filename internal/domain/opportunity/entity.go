package opportunity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusFilled Status = "filled"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusFilled, StatusClosed:
		return true
	}
	return false
}

type Opportunity struct {
	ID             string
	Title          string
	Company        string
	Location       *string
	RequiredSkills []string
	RatePerHour    *decimal.Decimal
	JobDescription *string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LinkStatus is a candidate's stage in an opportunity pipeline.
type LinkStatus string

const (
	LinkStatusForwarded    LinkStatus = "forwarded"
	LinkStatusInterviewing LinkStatus = "interviewing"
	LinkStatusOffered      LinkStatus = "offered"
	LinkStatusHired        LinkStatus = "hired"
	LinkStatusRejected     LinkStatus = "rejected"
)

func (s LinkStatus) Valid() bool {
	switch s {
	case LinkStatusForwarded, LinkStatusInterviewing, LinkStatusOffered, LinkStatusHired, LinkStatusRejected:
		return true
	}
	return false
}

// CandidateLink ties a candidate to an opportunity with the pipeline
// details tracked alongside the link.
type CandidateLink struct {
	ID             string
	OpportunityID  string
	CandidateID    string
	ResumeURL      *string
	OfferedSalary  *decimal.Decimal
	ReferralUserID *string
	Status         LinkStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CandidateLinkDetail is a pipeline row seen from the opportunity side.
type CandidateLinkDetail struct {
	LinkID        string           `json:"link_id"`
	CandidateID   string           `json:"candidate_id"`
	CandidateName string           `json:"candidate_name"`
	ResumeURL     *string          `json:"resume_url,omitempty"`
	OfferedSalary *decimal.Decimal `json:"offered_salary,omitempty"`
	Status        LinkStatus       `json:"status"`
	ReferredBy    *string          `json:"referred_by,omitempty"`
}

// OpportunityLinkDetail is a pipeline row seen from the candidate side.
type OpportunityLinkDetail struct {
	LinkID        string           `json:"link_id"`
	OpportunityID string           `json:"opportunity_id"`
	Title         string           `json:"title"`
	Company       string           `json:"company"`
	Status        LinkStatus       `json:"status"`
	OfferedSalary *decimal.Decimal `json:"offered_salary,omitempty"`
}
