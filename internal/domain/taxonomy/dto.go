package taxonomy

import "github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"

type CreateTechnologyRequest struct {
	Name string `json:"name"`
}

func (r *CreateTechnologyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDomainRequest struct {
	Name         string `json:"name"`
	TechnologyID string `json:"technology_id"`
}

func (r *CreateDomainRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.TechnologyID) {
		errs = append(errs, validator.ValidationError{Field: "technology_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSkillRequest struct {
	Name     string `json:"name"`
	DomainID string `json:"domain_id"`
}

func (r *CreateSkillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.DomainID) {
		errs = append(errs, validator.ValidationError{Field: "domain_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
