package invoice

import (
	"context"
	"io"
)

type InvoiceService interface {
	// GenerateForJob builds, commits and renders an invoice covering a
	// single job. Missing attendance is terminal for this scope.
	GenerateForJob(ctx context.Context, jobID string, p Period) (InvoiceResponse, SingleJobInvoiceDetail, error)

	// GenerateForPartner covers every job of a partner with attendance
	// in the period. Jobs without attendance are skipped and reported.
	GenerateForPartner(ctx context.Context, req GeneratePartnerInvoiceRequest) (InvoiceResponse, error)

	// GenerateForJobSet covers exactly the given jobs. Unknown jobs and
	// jobs without attendance are skipped and reported.
	GenerateForJobSet(ctx context.Context, req GenerateJobSetInvoiceRequest) (InvoiceResponse, error)

	GetByID(ctx context.Context, id string) (InvoiceResponse, error)
	ListByPeriod(ctx context.Context, p Period) ([]InvoiceResponse, error)

	// RetryDocument re-renders and re-stores the document of an already
	// committed invoice, overwriting its storage locator.
	RetryDocument(ctx context.Context, id string) (string, error)

	// Document opens the stored rendered document.
	Document(ctx context.Context, id string) (io.ReadCloser, string, string, error)
}
