package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/payment"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

const dateLayout = "2006-01-02"

// A recorded payment raises the candidate's trust score.
const trustScoreDelta = 10

type PaymentServiceImpl struct {
	db *database.DB
	payment.PaymentRepository
	candidateRepo candidate.CandidateRepository
	jobRepo       job.JobRepository
	trustRecorder candidate.TrustScoreRecorder
}

func NewPaymentService(
	db *database.DB,
	paymentRepository payment.PaymentRepository,
	candidateRepository candidate.CandidateRepository,
	jobRepository job.JobRepository,
	trustRecorder candidate.TrustScoreRecorder,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:                db,
		PaymentRepository: paymentRepository,
		candidateRepo:     candidateRepository,
		jobRepo:           jobRepository,
		trustRecorder:     trustRecorder,
	}
}

func (s *PaymentServiceImpl) Create(ctx context.Context, req payment.CreatePaymentRequest) (payment.Payment, error) {
	if _, err := s.candidateRepo.GetByID(ctx, req.CandidateID); err != nil {
		return payment.Payment{}, err
	}
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return payment.Payment{}, err
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to parse payment date: %w", err)
	}

	created, err := s.PaymentRepository.Create(ctx, payment.Payment{
		CandidateID:   req.CandidateID,
		JobID:         req.JobID,
		Salary:        req.Salary,
		ClientPayment: req.ClientPayment,
		PaymentDate:   paymentDate,
	})
	if err != nil {
		return payment.Payment{}, err
	}

	event := candidate.TrustScoreEvent{
		CandidateID: req.CandidateID,
		Delta:       trustScoreDelta,
		Reason:      "payment recorded",
		OccurredAt:  time.Now(),
	}
	if err := s.trustRecorder.Record(ctx, event); err != nil {
		slog.Warn("Failed to record trust score event", "candidate_id", req.CandidateID, "error", err)
	}

	return created, nil
}

func (s *PaymentServiceImpl) MonthlyReport(ctx context.Context, req payment.MonthlyReportRequest) (payment.MonthlyReport, error) {
	return s.PaymentRepository.MonthlyReport(ctx, req.Year, req.Month)
}
