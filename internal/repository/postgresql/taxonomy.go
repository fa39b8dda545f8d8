package postgresql

import (
	"context"
	"fmt"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/taxonomy"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type taxonomyRepository struct {
	db *database.DB
}

func NewTaxonomyRepository(db *database.DB) taxonomy.TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) CreateTechnology(ctx context.Context, name string) (taxonomy.Technology, error) {
	q := GetQuerier(ctx, r.db)

	var t taxonomy.Technology
	err := q.QueryRow(ctx,
		`INSERT INTO technologies (id, name) VALUES (uuidv7(), $1) RETURNING id, name`,
		name,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		return taxonomy.Technology{}, fmt.Errorf("failed to create technology: %w", err)
	}

	return t, nil
}

func (r *taxonomyRepository) ListTechnologies(ctx context.Context) ([]taxonomy.Technology, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM technologies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	defer rows.Close()

	var technologies []taxonomy.Technology
	for rows.Next() {
		var t taxonomy.Technology
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan technology: %w", err)
		}
		technologies = append(technologies, t)
	}

	return technologies, rows.Err()
}

func (r *taxonomyRepository) DeleteTechnology(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete technology: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.ErrTechnologyNotFound
	}

	return nil
}

func (r *taxonomyRepository) CreateDomain(ctx context.Context, name, technologyID string) (taxonomy.Domain, error) {
	q := GetQuerier(ctx, r.db)

	var d taxonomy.Domain
	err := q.QueryRow(ctx,
		`INSERT INTO domains (id, name, technology_id) VALUES (uuidv7(), $1, $2) RETURNING id, name, technology_id`,
		name, technologyID,
	).Scan(&d.ID, &d.Name, &d.TechnologyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return taxonomy.Domain{}, taxonomy.ErrTechnologyNotFound
		}
		return taxonomy.Domain{}, fmt.Errorf("failed to create domain: %w", err)
	}

	return d, nil
}

func (r *taxonomyRepository) ListDomainsByTechnology(ctx context.Context, technologyID string) ([]taxonomy.Domain, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, name, technology_id FROM domains WHERE technology_id = $1 ORDER BY name`,
		technologyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	var domains []taxonomy.Domain
	for rows.Next() {
		var d taxonomy.Domain
		if err := rows.Scan(&d.ID, &d.Name, &d.TechnologyID); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, d)
	}

	return domains, rows.Err()
}

func (r *taxonomyRepository) DeleteDomain(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.ErrDomainNotFound
	}

	return nil
}

func (r *taxonomyRepository) CreateSkill(ctx context.Context, name, domainID string) (taxonomy.Skill, error) {
	q := GetQuerier(ctx, r.db)

	var s taxonomy.Skill
	err := q.QueryRow(ctx,
		`INSERT INTO skills (id, name, domain_id) VALUES (uuidv7(), $1, $2) RETURNING id, name, domain_id`,
		name, domainID,
	).Scan(&s.ID, &s.Name, &s.DomainID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return taxonomy.Skill{}, taxonomy.ErrDomainNotFound
		}
		return taxonomy.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}

	return s, nil
}

func (r *taxonomyRepository) ListSkillsByDomain(ctx context.Context, domainID string) ([]taxonomy.Skill, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, name, domain_id FROM skills WHERE domain_id = $1 ORDER BY name`,
		domainID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []taxonomy.Skill
	for rows.Next() {
		var s taxonomy.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.DomainID); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (r *taxonomyRepository) DeleteSkill(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.ErrSkillNotFound
	}

	return nil
}
