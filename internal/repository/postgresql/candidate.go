package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type candidateRepository struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, email, phone, linkedin, skills, experience_years, expected_salary, resume_links, trust_score, created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var skillsJSON, resumeJSON []byte

	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.LinkedIn, &skillsJSON,
		&c.ExperienceYears, &c.ExpectedSalary, &resumeJSON, &c.TrustScore,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}

	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &c.Skills); err != nil {
			return candidate.Candidate{}, fmt.Errorf("failed to decode skills: %w", err)
		}
	}
	if len(resumeJSON) > 0 {
		if err := json.Unmarshal(resumeJSON, &c.ResumeLinks); err != nil {
			return candidate.Candidate{}, fmt.Errorf("failed to decode resume links: %w", err)
		}
	}

	return c, nil
}

func (r *candidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	skillsJSON, err := json.Marshal(c.Skills)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to encode skills: %w", err)
	}
	resumeJSON, err := json.Marshal(c.ResumeLinks)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to encode resume links: %w", err)
	}

	query := `
		INSERT INTO candidates (id, name, email, phone, linkedin, skills, experience_years, expected_salary, resume_links, trust_score, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, 50, NOW(), NOW())
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		c.Name, c.Email, c.Phone, c.LinkedIn, skillsJSON,
		c.ExperienceYears, c.ExpectedSalary, resumeJSON,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return candidate.Candidate{}, candidate.ErrEmailExists
		}
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return created, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	return count, nil
}

func (r *candidateRepository) Update(ctx context.Context, req candidate.UpdateCandidateRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.LinkedIn != nil {
		addSet("linkedin", *req.LinkedIn)
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(req.Skills)
		if err != nil {
			return fmt.Errorf("failed to encode skills: %w", err)
		}
		addSet("skills", skillsJSON)
	}
	if req.ExperienceYears != nil {
		addSet("experience_years", *req.ExperienceYears)
	}
	if req.ExpectedSalary != nil {
		addSet("expected_salary", *req.ExpectedSalary)
	}
	if req.ResumeLinks != nil {
		resumeJSON, err := json.Marshal(req.ResumeLinks)
		if err != nil {
			return fmt.Errorf("failed to encode resume links: %w", err)
		}
		addSet("resume_links", resumeJSON)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d`, strings.Join(sets, ", "), argID)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return candidate.ErrEmailExists
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func (r *candidateRepository) MatchBySkills(ctx context.Context, skills []string) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	// Candidates whose skills array contains any of the requested skills.
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(skills) s
			WHERE s = ANY($1)
		)
		ORDER BY experience_years DESC
	`

	rows, err := q.Query(ctx, query, skills)
	if err != nil {
		return nil, fmt.Errorf("failed to match candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (r *candidateRepository) AppendResumeLink(ctx context.Context, id string, link string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET resume_links = COALESCE(resume_links, '[]'::jsonb) || to_jsonb($1::text),
			updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, link, id)
	if err != nil {
		return fmt.Errorf("failed to append resume link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func (r *candidateRepository) AdjustTrustScore(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET trust_score = LEAST(GREATEST(trust_score + $1, $2), $3),
			updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, delta, candidate.TrustScoreMin, candidate.TrustScoreMax, id)
	if err != nil {
		return fmt.Errorf("failed to adjust trust score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}
