package taxonomy

import (
	"context"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/taxonomy"
)

type TaxonomyServiceImpl struct {
	taxonomy.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepository taxonomy.TaxonomyRepository) taxonomy.TaxonomyService {
	return &TaxonomyServiceImpl{TaxonomyRepository: taxonomyRepository}
}

func (s *TaxonomyServiceImpl) CreateTechnology(ctx context.Context, req taxonomy.CreateTechnologyRequest) (taxonomy.Technology, error) {
	return s.TaxonomyRepository.CreateTechnology(ctx, req.Name)
}

func (s *TaxonomyServiceImpl) CreateDomain(ctx context.Context, req taxonomy.CreateDomainRequest) (taxonomy.Domain, error) {
	return s.TaxonomyRepository.CreateDomain(ctx, req.Name, req.TechnologyID)
}

func (s *TaxonomyServiceImpl) CreateSkill(ctx context.Context, req taxonomy.CreateSkillRequest) (taxonomy.Skill, error) {
	return s.TaxonomyRepository.CreateSkill(ctx, req.Name, req.DomainID)
}
