package candidate

import (
	"context"
	"io"
)

type CandidateService interface {
	Create(ctx context.Context, req CreateCandidateRequest) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, req UpdateCandidateRequest) error
	Delete(ctx context.Context, id string) error
	Match(ctx context.Context, req MatchCandidatesRequest) ([]Candidate, error)
	UploadResume(ctx context.Context, id string, file io.Reader, filename string) (string, error)
}

// TrustScoreRecorder consumes trust-score events emitted by the payment
// and escalation flows.
type TrustScoreRecorder interface {
	Record(ctx context.Context, event TrustScoreEvent) error
}
