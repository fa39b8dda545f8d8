package certificate

import "context"

type CertificateRepository interface {
	Create(ctx context.Context, c Certificate) (Certificate, error)
	GetByID(ctx context.Context, id string) (Certificate, error)
	List(ctx context.Context) ([]Certificate, error)
	Update(ctx context.Context, id string, req UpdateCertificateRequest) (Certificate, error)
	Delete(ctx context.Context, id string) error

	// ListHolders returns the candidates assigned a certificate.
	ListHolders(ctx context.Context, certificateID string) ([]CertificateHolder, error)

	ListByCandidate(ctx context.Context, candidateID string) ([]Certificate, error)

	// ReplaceForCandidate swaps the candidate's assignment set. Both
	// statements must run inside the caller's transaction.
	ReplaceForCandidate(ctx context.Context, candidateID string, certificateIDs []string) error
}
