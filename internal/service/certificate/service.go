package certificate

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/certificate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/repository/postgresql"
)

type CertificateServiceImpl struct {
	certificate.CertificateRepository
	candidateRepo candidate.CandidateRepository
	inTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewCertificateService(
	db *database.DB,
	certificateRepository certificate.CertificateRepository,
	candidateRepository candidate.CandidateRepository,
) certificate.CertificateService {
	return &CertificateServiceImpl{
		CertificateRepository: certificateRepository,
		candidateRepo:         candidateRepository,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

func (s *CertificateServiceImpl) Create(ctx context.Context, req certificate.CreateCertificateRequest) (certificate.Certificate, error) {
	return s.CertificateRepository.Create(ctx, certificate.Certificate{
		Name:     req.Name,
		Provider: req.Provider,
	})
}

func (s *CertificateServiceImpl) Update(ctx context.Context, id string, req certificate.UpdateCertificateRequest) (certificate.Certificate, error) {
	return s.CertificateRepository.Update(ctx, id, req)
}

func (s *CertificateServiceImpl) ListByCandidate(ctx context.Context, candidateID string) ([]certificate.Certificate, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return s.CertificateRepository.ListByCandidate(ctx, candidateID)
}

// AssignToCandidate replaces the candidate's certificate set. Every
// referenced certificate must exist before anything is written.
func (s *CertificateServiceImpl) AssignToCandidate(ctx context.Context, candidateID string, req certificate.AssignCertificatesRequest) error {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return err
	}

	for _, certID := range req.CertificateIDs {
		if _, err := s.CertificateRepository.GetByID(ctx, certID); err != nil {
			return err
		}
	}

	return s.inTx(ctx, func(ctx context.Context) error {
		return s.CertificateRepository.ReplaceForCandidate(ctx, candidateID, req.CertificateIDs)
	})
}
