package opportunity

import "context"

type OpportunityRepository interface {
	Create(ctx context.Context, o Opportunity) (Opportunity, error)
	GetByID(ctx context.Context, id string) (Opportunity, error)
	List(ctx context.Context, status *Status) ([]Opportunity, error)
	Update(ctx context.Context, req UpdateOpportunityRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	CreateLink(ctx context.Context, l CandidateLink) (CandidateLink, error)
	ListLinksByOpportunity(ctx context.Context, opportunityID string) ([]CandidateLinkDetail, error)
	ListLinksByCandidate(ctx context.Context, candidateID string) ([]OpportunityLinkDetail, error)
	UpdateLink(ctx context.Context, id string, req UpdateCandidateLinkRequest) (CandidateLink, error)
}
