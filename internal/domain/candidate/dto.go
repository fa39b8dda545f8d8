package candidate

import (
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateCandidateRequest struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	LinkedIn        *string          `json:"linkedin,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	ExperienceYears int              `json:"experience_years"`
	ExpectedSalary  *decimal.Decimal `json:"expected_salary,omitempty"`
	ResumeLink      *string          `json:"resume_link,omitempty"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.ExperienceYears < 0 {
		errs = append(errs, validator.ValidationError{Field: "experience_years", Message: "must be non-negative"})
	}
	if r.ExpectedSalary != nil && r.ExpectedSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "expected_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCandidateRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	LinkedIn        *string          `json:"linkedin,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	ExperienceYears *int             `json:"experience_years,omitempty"`
	ExpectedSalary  *decimal.Decimal `json:"expected_salary,omitempty"`
	ResumeLinks     []string         `json:"resume_links,omitempty"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.ExperienceYears != nil && *r.ExperienceYears < 0 {
		errs = append(errs, validator.ValidationError{Field: "experience_years", Message: "must be non-negative"})
	}
	if r.ExpectedSalary != nil && r.ExpectedSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "expected_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MatchCandidatesRequest struct {
	RequiredSkills []string `json:"required_skills"`
}

func (r *MatchCandidatesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RequiredSkills) == 0 {
		errs = append(errs, validator.ValidationError{Field: "required_skills", Message: "at least one skill is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	LinkedIn        *string          `json:"linkedin,omitempty"`
	Skills          []string         `json:"skills"`
	ExperienceYears int              `json:"experience_years"`
	ExpectedSalary  *decimal.Decimal `json:"expected_salary,omitempty"`
	ResumeLinks     []string         `json:"resume_links"`
	TrustScore      int              `json:"trust_score"`
}
