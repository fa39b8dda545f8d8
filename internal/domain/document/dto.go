package document

import "github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"

type UploadDocumentRequest struct {
	EntityType string
	EntityID   string
	Name       string
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntityType) {
		errs = append(errs, validator.ValidationError{Field: "entity_type", Message: "is required"})
	}
	if validator.IsEmpty(r.EntityID) {
		errs = append(errs, validator.ValidationError{Field: "entity_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentResponse struct {
	ID         string `json:"id"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Name       string `json:"name"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	CreatedAt  string `json:"created_at"`
}
