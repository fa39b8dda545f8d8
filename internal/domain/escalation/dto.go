package escalation

import "github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"

type CreateEscalationRequest struct {
	CandidateID    string `json:"candidate_id"`
	JobID          string `json:"job_id"`
	Reason         string `json:"reason"`
	EscalationDate string `json:"escalation_date"`
}

func (r *CreateEscalationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidate_id", Message: "is required"})
	}
	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{Field: "job_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if validator.IsEmpty(r.EscalationDate) {
		errs = append(errs, validator.ValidationError{Field: "escalation_date", Message: "is required"})
	} else if !validator.IsValidDate(r.EscalationDate) {
		errs = append(errs, validator.ValidationError{Field: "escalation_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveEscalationRequest struct {
	Resolution string `json:"resolution"`
}

func (r *ResolveEscalationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Resolution) {
		errs = append(errs, validator.ValidationError{Field: "resolution", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
