package candidate

import "context"

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, req UpdateCandidateRequest) error
	Delete(ctx context.Context, id string) error
	MatchBySkills(ctx context.Context, skills []string) ([]Candidate, error)
	AppendResumeLink(ctx context.Context, id string, link string) error

	// AdjustTrustScore applies a delta and clamps the result to [0, 100].
	AdjustTrustScore(ctx context.Context, id string, delta int) error
}
