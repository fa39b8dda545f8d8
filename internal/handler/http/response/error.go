package response

import (
	"errors"
	"net/http"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/activity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/auth"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/certificate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/document"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/escalation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/opportunity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/payment"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/taxonomy"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/user"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailUnverified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrEmailExists):
		Conflict(w, "Candidate email already registered")

	// Opportunity domain errors
	case errors.Is(err, opportunity.ErrOpportunityNotFound):
		NotFound(w, "Opportunity not found")
	case errors.Is(err, opportunity.ErrInvalidStatus):
		BadRequest(w, "Invalid opportunity status", nil)
	case errors.Is(err, opportunity.ErrCandidateLinkNotFound):
		NotFound(w, "Candidate link not found")
	case errors.Is(err, opportunity.ErrCandidateAlreadyLinked):
		Conflict(w, "Candidate already linked to this opportunity")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrNoFieldsToSet):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, job.ErrInvalidStatus):
		BadRequest(w, "Invalid job status", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrWorkingDaysNotSet):
		BadRequest(w, "Working days are not configured for this period", nil)
	case errors.Is(err, attendance.ErrRegularDaysExceeded):
		BadRequest(w, "Regular days worked exceed the period's working days", nil)

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrNoJobsFound):
		NotFound(w, "No jobs with attendance found for this scope and period")
	case errors.Is(err, invoice.ErrMissingAttendance):
		NotFound(w, "Attendance record not found for this period")
	case errors.Is(err, invoice.ErrDuplicateInvoice):
		Conflict(w, "Invoice already exists for this scope and period")

	// Payment and escalation domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, escalation.ErrEscalationNotFound):
		NotFound(w, "Escalation not found")

	// Document, certificate, and activity domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, certificate.ErrCertificateNotFound):
		NotFound(w, "Certificate not found")
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Activity not found")

	// Taxonomy domain errors
	case errors.Is(err, taxonomy.ErrTechnologyNotFound):
		NotFound(w, "Technology not found")
	case errors.Is(err, taxonomy.ErrDomainNotFound):
		NotFound(w, "Domain not found")
	case errors.Is(err, taxonomy.ErrSkillNotFound):
		NotFound(w, "Skill not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
