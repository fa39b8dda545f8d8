package certificate

import (
	"context"
	"testing"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/certificate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertificateRepo struct {
	certificate.CertificateRepository
	certificates map[string]certificate.Certificate
	assignments  map[string][]string
}

func newFakeCertificateRepo(ids ...string) *fakeCertificateRepo {
	certificates := make(map[string]certificate.Certificate)
	for _, id := range ids {
		certificates[id] = certificate.Certificate{ID: id, Name: "Cert " + id, Provider: "AWS"}
	}
	return &fakeCertificateRepo{
		certificates: certificates,
		assignments:  make(map[string][]string),
	}
}

func (f *fakeCertificateRepo) GetByID(ctx context.Context, id string) (certificate.Certificate, error) {
	c, ok := f.certificates[id]
	if !ok {
		return certificate.Certificate{}, certificate.ErrCertificateNotFound
	}
	return c, nil
}

func (f *fakeCertificateRepo) ReplaceForCandidate(ctx context.Context, candidateID string, certificateIDs []string) error {
	f.assignments[candidateID] = certificateIDs
	return nil
}

func (f *fakeCertificateRepo) ListByCandidate(ctx context.Context, candidateID string) ([]certificate.Certificate, error) {
	var result []certificate.Certificate
	for _, id := range f.assignments[candidateID] {
		result = append(result, f.certificates[id])
	}
	return result, nil
}

type fakeCandidateRepo struct {
	candidate.CandidateRepository
	ids map[string]bool
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	if !f.ids[id] {
		return candidate.Candidate{}, candidate.ErrCandidateNotFound
	}
	return candidate.Candidate{ID: id}, nil
}

func newTestService(certs *fakeCertificateRepo, candidates *fakeCandidateRepo) *CertificateServiceImpl {
	return &CertificateServiceImpl{
		CertificateRepository: certs,
		candidateRepo:         candidates,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func TestAssignToCandidate_ReplacesExistingSet(t *testing.T) {
	certs := newFakeCertificateRepo("cert-1", "cert-2", "cert-3")
	certs.assignments["cand-1"] = []string{"cert-1"}
	svc := newTestService(certs, &fakeCandidateRepo{ids: map[string]bool{"cand-1": true}})

	err := svc.AssignToCandidate(context.Background(), "cand-1",
		certificate.AssignCertificatesRequest{CertificateIDs: []string{"cert-2", "cert-3"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"cert-2", "cert-3"}, certs.assignments["cand-1"])
}

func TestAssignToCandidate_EmptyListClears(t *testing.T) {
	certs := newFakeCertificateRepo("cert-1")
	certs.assignments["cand-1"] = []string{"cert-1"}
	svc := newTestService(certs, &fakeCandidateRepo{ids: map[string]bool{"cand-1": true}})

	err := svc.AssignToCandidate(context.Background(), "cand-1", certificate.AssignCertificatesRequest{})
	require.NoError(t, err)

	assert.Empty(t, certs.assignments["cand-1"])
}

func TestAssignToCandidate_UnknownCandidate(t *testing.T) {
	certs := newFakeCertificateRepo("cert-1")
	svc := newTestService(certs, &fakeCandidateRepo{ids: map[string]bool{}})

	err := svc.AssignToCandidate(context.Background(), "missing",
		certificate.AssignCertificatesRequest{CertificateIDs: []string{"cert-1"}})
	assert.ErrorIs(t, err, candidate.ErrCandidateNotFound)
	assert.Empty(t, certs.assignments)
}

func TestAssignToCandidate_UnknownCertificate(t *testing.T) {
	certs := newFakeCertificateRepo("cert-1")
	svc := newTestService(certs, &fakeCandidateRepo{ids: map[string]bool{"cand-1": true}})

	err := svc.AssignToCandidate(context.Background(), "cand-1",
		certificate.AssignCertificatesRequest{CertificateIDs: []string{"cert-1", "missing"}})
	assert.ErrorIs(t, err, certificate.ErrCertificateNotFound)
	assert.Empty(t, certs.assignments, "nothing must be written when a certificate is unknown")
}

func TestListByCandidate_UnknownCandidate(t *testing.T) {
	svc := newTestService(newFakeCertificateRepo(), &fakeCandidateRepo{ids: map[string]bool{}})

	_, err := svc.ListByCandidate(context.Background(), "missing")
	assert.ErrorIs(t, err, candidate.ErrCandidateNotFound)
}
