package opportunity

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOpportunityRequest struct {
	Title          string           `json:"title"`
	Company        string           `json:"company"`
	Location       *string          `json:"location,omitempty"`
	RequiredSkills []string         `json:"required_skills,omitempty"`
	RatePerHour    *decimal.Decimal `json:"rate_per_hour,omitempty"`
	JobDescription *string          `json:"job_description,omitempty"`
}

func (r *CreateOpportunityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "is required"})
	}
	if r.RatePerHour != nil && r.RatePerHour.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_hour", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOpportunityRequest struct {
	ID             string
	Title          *string          `json:"title,omitempty"`
	Company        *string          `json:"company,omitempty"`
	Location       *string          `json:"location,omitempty"`
	RequiredSkills []string         `json:"required_skills,omitempty"`
	RatePerHour    *decimal.Decimal `json:"rate_per_hour,omitempty"`
	JobDescription *string          `json:"job_description,omitempty"`
	Status         *Status          `json:"status,omitempty"`
}

func (r *UpdateOpportunityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of open, filled, closed"})
	}
	if r.RatePerHour != nil && r.RatePerHour.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_hour", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OpportunityResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Company        string           `json:"company"`
	Location       *string          `json:"location,omitempty"`
	RequiredSkills []string         `json:"required_skills"`
	RatePerHour    *decimal.Decimal `json:"rate_per_hour,omitempty"`
	JobDescription *string          `json:"job_description,omitempty"`
	Status         Status           `json:"status"`
}

type LinkCandidateRequest struct {
	CandidateID    string           `json:"candidate_id"`
	ResumeURL      *string          `json:"resume_url,omitempty"`
	OfferedSalary  *decimal.Decimal `json:"offered_salary,omitempty"`
	ReferralUserID *string          `json:"referral_user_id,omitempty"`
	Status         *LinkStatus      `json:"status,omitempty"`
}

func (r *LinkCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "is required"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of forwarded, interviewing, offered, hired, rejected"})
	}
	if r.OfferedSalary != nil && r.OfferedSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "offered_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCandidateLinkRequest struct {
	ResumeURL     *string          `json:"resume_url,omitempty"`
	OfferedSalary *decimal.Decimal `json:"offered_salary,omitempty"`
	Status        *LinkStatus      `json:"status,omitempty"`
}

func (r *UpdateCandidateLinkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of forwarded, interviewing, offered, hired, rejected"})
	}
	if r.OfferedSalary != nil && r.OfferedSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "offered_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateLinkResponse struct {
	ID             string           `json:"id"`
	OpportunityID  string           `json:"opportunity_id"`
	CandidateID    string           `json:"candidate_id"`
	ResumeURL      *string          `json:"resume_url,omitempty"`
	OfferedSalary  *decimal.Decimal `json:"offered_salary,omitempty"`
	ReferralUserID *string          `json:"referral_user_id,omitempty"`
	Status         LinkStatus       `json:"status"`
}
