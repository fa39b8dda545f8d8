package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/escalation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

const dateLayout = "2006-01-02"

// An escalation against a candidate lowers their trust score.
const trustScoreDelta = -10

type EscalationServiceImpl struct {
	db *database.DB
	escalation.EscalationRepository
	candidateRepo candidate.CandidateRepository
	jobRepo       job.JobRepository
	trustRecorder candidate.TrustScoreRecorder
}

func NewEscalationService(
	db *database.DB,
	escalationRepository escalation.EscalationRepository,
	candidateRepository candidate.CandidateRepository,
	jobRepository job.JobRepository,
	trustRecorder candidate.TrustScoreRecorder,
) escalation.EscalationService {
	return &EscalationServiceImpl{
		db:                   db,
		EscalationRepository: escalationRepository,
		candidateRepo:        candidateRepository,
		jobRepo:              jobRepository,
		trustRecorder:        trustRecorder,
	}
}

func (s *EscalationServiceImpl) Create(ctx context.Context, req escalation.CreateEscalationRequest) (escalation.Escalation, error) {
	if _, err := s.candidateRepo.GetByID(ctx, req.CandidateID); err != nil {
		return escalation.Escalation{}, err
	}
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return escalation.Escalation{}, err
	}

	escalationDate, err := time.Parse(dateLayout, req.EscalationDate)
	if err != nil {
		return escalation.Escalation{}, fmt.Errorf("failed to parse escalation date: %w", err)
	}

	created, err := s.EscalationRepository.Create(ctx, escalation.Escalation{
		CandidateID:    req.CandidateID,
		JobID:          req.JobID,
		Reason:         req.Reason,
		EscalationDate: escalationDate,
	})
	if err != nil {
		return escalation.Escalation{}, err
	}

	event := candidate.TrustScoreEvent{
		CandidateID: req.CandidateID,
		Delta:       trustScoreDelta,
		Reason:      "escalation raised",
		OccurredAt:  time.Now(),
	}
	if err := s.trustRecorder.Record(ctx, event); err != nil {
		slog.Warn("Failed to record trust score event", "candidate_id", req.CandidateID, "error", err)
	}

	return created, nil
}

func (s *EscalationServiceImpl) Resolve(ctx context.Context, id string, req escalation.ResolveEscalationRequest) (escalation.Escalation, error) {
	return s.EscalationRepository.Resolve(ctx, id, req.Resolution)
}
