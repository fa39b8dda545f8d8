package trustscore

import (
	"context"
	"fmt"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
)

// Recorder applies trust-score events to candidates. The adjustment is
// clamped to [0, 100] by the repository; emitters never touch the score
// directly.
type Recorder struct {
	candidateRepo candidate.CandidateRepository
}

func NewRecorder(candidateRepo candidate.CandidateRepository) candidate.TrustScoreRecorder {
	return &Recorder{candidateRepo: candidateRepo}
}

func (r *Recorder) Record(ctx context.Context, event candidate.TrustScoreEvent) error {
	if err := r.candidateRepo.AdjustTrustScore(ctx, event.CandidateID, event.Delta); err != nil {
		return fmt.Errorf("failed to apply trust score event (%s): %w", event.Reason, err)
	}
	return nil
}
