package invoice

import "errors"

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrNoJobsFound       = errors.New("no jobs with attendance found for this scope and period")
	ErrMissingAttendance = errors.New("attendance record not found for this period")
	ErrDuplicateInvoice  = errors.New("invoice already exists for this scope and period")
)
