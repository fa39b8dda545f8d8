package certificate

import "github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"

type CreateCertificateRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func (r *CreateCertificateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Provider) {
		errs = append(errs, validator.ValidationError{Field: "provider", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCertificateRequest struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func (r *UpdateCertificateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Provider) {
		errs = append(errs, validator.ValidationError{Field: "provider", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AssignCertificatesRequest replaces a candidate's certificate set.
// An empty list clears all assignments.
type AssignCertificatesRequest struct {
	CertificateIDs []string `json:"certificate_ids"`
}

type CertificateResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	CreatedAt string `json:"created_at"`
}
