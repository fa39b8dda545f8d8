package taxonomy

import "context"

type TaxonomyService interface {
	CreateTechnology(ctx context.Context, req CreateTechnologyRequest) (Technology, error)
	ListTechnologies(ctx context.Context) ([]Technology, error)
	DeleteTechnology(ctx context.Context, id string) error

	CreateDomain(ctx context.Context, req CreateDomainRequest) (Domain, error)
	ListDomainsByTechnology(ctx context.Context, technologyID string) ([]Domain, error)
	DeleteDomain(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, req CreateSkillRequest) (Skill, error)
	ListSkillsByDomain(ctx context.Context, domainID string) ([]Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}
