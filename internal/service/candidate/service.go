package candidate

import (
	"context"
	"io"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/service/file"
)

type CandidateServiceImpl struct {
	db *database.DB
	candidate.CandidateRepository
	fileService file.FileService
}

func NewCandidateService(db *database.DB, candidateRepository candidate.CandidateRepository, fileService file.FileService) candidate.CandidateService {
	return &CandidateServiceImpl{
		db:                  db,
		CandidateRepository: candidateRepository,
		fileService:         fileService,
	}
}

func (s *CandidateServiceImpl) Create(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.Candidate, error) {
	var resumeLinks []string
	if req.ResumeLink != nil && *req.ResumeLink != "" {
		resumeLinks = []string{*req.ResumeLink}
	}

	return s.CandidateRepository.Create(ctx, candidate.Candidate{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		LinkedIn:        req.LinkedIn,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		ExpectedSalary:  req.ExpectedSalary,
		ResumeLinks:     resumeLinks,
	})
}

func (s *CandidateServiceImpl) Match(ctx context.Context, req candidate.MatchCandidatesRequest) ([]candidate.Candidate, error) {
	return s.MatchBySkills(ctx, req.RequiredSkills)
}

func (s *CandidateServiceImpl) UploadResume(ctx context.Context, id string, fileReader io.Reader, filename string) (string, error) {
	// Fail early when the candidate does not exist.
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}

	path, err := s.fileService.UploadResume(ctx, id, fileReader, filename)
	if err != nil {
		return "", err
	}

	if err := s.AppendResumeLink(ctx, id, path); err != nil {
		return "", err
	}

	return path, nil
}
