package invoice

import "context"

// InvoiceRepository is the persistence side of the invoice sink.
//
// Create writes the aggregate row and all line-item rows as one unit:
// either everything lands or nothing does. AttachStorageLocator updates
// only the storage locator and may be called again after a re-render.
type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	AttachStorageLocator(ctx context.Context, id, locator string) error
	GetByID(ctx context.Context, id string) (Invoice, error)
	ListByJob(ctx context.Context, jobID string) ([]Invoice, error)
	ListByPeriod(ctx context.Context, p Period) ([]Invoice, error)
}
