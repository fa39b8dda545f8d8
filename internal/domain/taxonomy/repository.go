package taxonomy

import "context"

type TaxonomyRepository interface {
	CreateTechnology(ctx context.Context, name string) (Technology, error)
	ListTechnologies(ctx context.Context) ([]Technology, error)
	DeleteTechnology(ctx context.Context, id string) error

	CreateDomain(ctx context.Context, name, technologyID string) (Domain, error)
	ListDomainsByTechnology(ctx context.Context, technologyID string) ([]Domain, error)
	DeleteDomain(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, name, domainID string) (Skill, error)
	ListSkillsByDomain(ctx context.Context, domainID string) ([]Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}
