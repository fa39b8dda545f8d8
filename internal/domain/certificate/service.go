package certificate

import "context"

type CertificateService interface {
	Create(ctx context.Context, req CreateCertificateRequest) (Certificate, error)
	GetByID(ctx context.Context, id string) (Certificate, error)
	List(ctx context.Context) ([]Certificate, error)
	Update(ctx context.Context, id string, req UpdateCertificateRequest) (Certificate, error)
	Delete(ctx context.Context, id string) error

	ListHolders(ctx context.Context, certificateID string) ([]CertificateHolder, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Certificate, error)

	// AssignToCandidate atomically replaces the candidate's certificates.
	AssignToCandidate(ctx context.Context, candidateID string, req AssignCertificatesRequest) error
}
