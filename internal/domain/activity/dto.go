package activity

import (
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
)

type CreateActivityRequest struct {
	ParentType      string         `json:"parent_type"`
	ParentID        string         `json:"parent_id"`
	Type            string         `json:"activity_type"`
	Subject         string         `json:"subject"`
	Description     *string        `json:"description,omitempty"`
	Status          *Status        `json:"status,omitempty"`
	DueDate         *string        `json:"due_date,omitempty"`
	StartTime       *time.Time     `json:"start_time,omitempty"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	Location        *string        `json:"location,omitempty"`
	CallDuration    *int           `json:"call_duration,omitempty"`
	EmailRecipients *string        `json:"email_recipients,omitempty"`
	CC              *string        `json:"cc,omitempty"`
	BCC             *string        `json:"bcc,omitempty"`
	Attachments     []string       `json:"attachments,omitempty"`
	AdditionalInfo  map[string]any `json:"additional_info,omitempty"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ParentType) {
		errs = append(errs, validator.ValidationError{Field: "parent_type", Message: "is required"})
	}
	if validator.IsEmpty(r.ParentID) {
		errs = append(errs, validator.ValidationError{Field: "parent_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "activity_type", Message: "is required"})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "is required"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, completed, cancelled"})
	}
	if r.DueDate != nil && !validator.IsValidDate(*r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateActivityRequest struct {
	Subject         *string        `json:"subject,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Status          *Status        `json:"status,omitempty"`
	DueDate         *string        `json:"due_date,omitempty"`
	StartTime       *time.Time     `json:"start_time,omitempty"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	Location        *string        `json:"location,omitempty"`
	CallDuration    *int           `json:"call_duration,omitempty"`
	EmailRecipients *string        `json:"email_recipients,omitempty"`
	CC              *string        `json:"cc,omitempty"`
	BCC             *string        `json:"bcc,omitempty"`
	Attachments     []string       `json:"attachments,omitempty"`
	AdditionalInfo  map[string]any `json:"additional_info,omitempty"`
}

func (r *UpdateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, completed, cancelled"})
	}
	if r.DueDate != nil && !validator.IsValidDate(*r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ActivityResponse struct {
	ID              string         `json:"id"`
	ParentType      string         `json:"parent_type"`
	ParentID        string         `json:"parent_id"`
	Type            string         `json:"activity_type"`
	Subject         string         `json:"subject"`
	Description     *string        `json:"description,omitempty"`
	Status          Status         `json:"status"`
	DueDate         *string        `json:"due_date,omitempty"`
	StartTime       *time.Time     `json:"start_time,omitempty"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	Location        *string        `json:"location,omitempty"`
	CallDuration    *int           `json:"call_duration,omitempty"`
	EmailRecipients *string        `json:"email_recipients,omitempty"`
	CC              *string        `json:"cc,omitempty"`
	BCC             *string        `json:"bcc,omitempty"`
	Attachments     []string       `json:"attachments,omitempty"`
	AdditionalInfo  map[string]any `json:"additional_info,omitempty"`
	UserName        string         `json:"user_name"`
	CreatedAt       time.Time      `json:"created_at"`
}
