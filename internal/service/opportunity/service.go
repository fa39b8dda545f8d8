package opportunity

import (
	"context"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/opportunity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type OpportunityServiceImpl struct {
	db *database.DB
	opportunity.OpportunityRepository
	candidateRepo candidate.CandidateRepository
}

func NewOpportunityService(
	db *database.DB,
	opportunityRepository opportunity.OpportunityRepository,
	candidateRepository candidate.CandidateRepository,
) opportunity.OpportunityService {
	return &OpportunityServiceImpl{
		db:                    db,
		OpportunityRepository: opportunityRepository,
		candidateRepo:         candidateRepository,
	}
}

func (s *OpportunityServiceImpl) Create(ctx context.Context, req opportunity.CreateOpportunityRequest) (opportunity.Opportunity, error) {
	return s.OpportunityRepository.Create(ctx, opportunity.Opportunity{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
		RatePerHour:    req.RatePerHour,
		JobDescription: req.JobDescription,
	})
}

func (s *OpportunityServiceImpl) LinkCandidate(ctx context.Context, opportunityID string, req opportunity.LinkCandidateRequest) (opportunity.CandidateLink, error) {
	if _, err := s.OpportunityRepository.GetByID(ctx, opportunityID); err != nil {
		return opportunity.CandidateLink{}, err
	}
	if _, err := s.candidateRepo.GetByID(ctx, req.CandidateID); err != nil {
		return opportunity.CandidateLink{}, err
	}

	status := opportunity.LinkStatusForwarded
	if req.Status != nil {
		status = *req.Status
	}

	return s.OpportunityRepository.CreateLink(ctx, opportunity.CandidateLink{
		OpportunityID:  opportunityID,
		CandidateID:    req.CandidateID,
		ResumeURL:      req.ResumeURL,
		OfferedSalary:  req.OfferedSalary,
		ReferralUserID: req.ReferralUserID,
		Status:         status,
	})
}

func (s *OpportunityServiceImpl) ListCandidates(ctx context.Context, opportunityID string) ([]opportunity.CandidateLinkDetail, error) {
	if _, err := s.OpportunityRepository.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	}
	return s.OpportunityRepository.ListLinksByOpportunity(ctx, opportunityID)
}

func (s *OpportunityServiceImpl) ListOpportunitiesForCandidate(ctx context.Context, candidateID string) ([]opportunity.OpportunityLinkDetail, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return s.OpportunityRepository.ListLinksByCandidate(ctx, candidateID)
}

func (s *OpportunityServiceImpl) UpdateLink(ctx context.Context, id string, req opportunity.UpdateCandidateLinkRequest) (opportunity.CandidateLink, error) {
	return s.OpportunityRepository.UpdateLink(ctx, id, req)
}
