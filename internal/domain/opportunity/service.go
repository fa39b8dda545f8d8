package opportunity

import "context"

type OpportunityService interface {
	Create(ctx context.Context, req CreateOpportunityRequest) (Opportunity, error)
	GetByID(ctx context.Context, id string) (Opportunity, error)
	List(ctx context.Context, status *Status) ([]Opportunity, error)
	Update(ctx context.Context, req UpdateOpportunityRequest) error
	Delete(ctx context.Context, id string) error

	// LinkCandidate puts a candidate into the opportunity's pipeline.
	LinkCandidate(ctx context.Context, opportunityID string, req LinkCandidateRequest) (CandidateLink, error)
	ListCandidates(ctx context.Context, opportunityID string) ([]CandidateLinkDetail, error)
	ListOpportunitiesForCandidate(ctx context.Context, candidateID string) ([]OpportunityLinkDetail, error)
	UpdateLink(ctx context.Context, id string, req UpdateCandidateLinkRequest) (CandidateLink, error)
}
