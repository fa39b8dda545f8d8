package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/opportunity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type opportunityRepository struct {
	db *database.DB
}

func NewOpportunityRepository(db *database.DB) opportunity.OpportunityRepository {
	return &opportunityRepository{db: db}
}

const opportunityColumns = `id, title, company, location, required_skills, rate_per_hour, job_description, status, created_at, updated_at`

func scanOpportunity(row pgx.Row) (opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	var skillsJSON []byte

	err := row.Scan(
		&o.ID, &o.Title, &o.Company, &o.Location, &skillsJSON,
		&o.RatePerHour, &o.JobDescription, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return opportunity.Opportunity{}, err
	}

	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &o.RequiredSkills); err != nil {
			return opportunity.Opportunity{}, fmt.Errorf("failed to decode required skills: %w", err)
		}
	}

	return o, nil
}

func (r *opportunityRepository) Create(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	q := GetQuerier(ctx, r.db)

	skillsJSON, err := json.Marshal(o.RequiredSkills)
	if err != nil {
		return opportunity.Opportunity{}, fmt.Errorf("failed to encode required skills: %w", err)
	}

	query := `
		INSERT INTO opportunity (id, title, company, location, required_skills, rate_per_hour, job_description, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + opportunityColumns

	created, err := scanOpportunity(q.QueryRow(ctx, query,
		o.Title, o.Company, o.Location, skillsJSON, o.RatePerHour, o.JobDescription, opportunity.StatusOpen,
	))
	if err != nil {
		return opportunity.Opportunity{}, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return created, nil
}

func (r *opportunityRepository) GetByID(ctx context.Context, id string) (opportunity.Opportunity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + opportunityColumns + ` FROM opportunity WHERE id = $1`

	o, err := scanOpportunity(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return opportunity.Opportunity{}, opportunity.ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, fmt.Errorf("failed to get opportunity: %w", err)
	}

	return o, nil
}

func (r *opportunityRepository) List(ctx context.Context, status *opportunity.Status) ([]opportunity.Opportunity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + opportunityColumns + ` FROM opportunity`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []opportunity.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, o)
	}

	return opportunities, rows.Err()
}

func (r *opportunityRepository) Update(ctx context.Context, req opportunity.UpdateOpportunityRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.RequiredSkills != nil {
		skillsJSON, err := json.Marshal(req.RequiredSkills)
		if err != nil {
			return fmt.Errorf("failed to encode required skills: %w", err)
		}
		addSet("required_skills", skillsJSON)
	}
	if req.RatePerHour != nil {
		addSet("rate_per_hour", *req.RatePerHour)
	}
	if req.JobDescription != nil {
		addSet("job_description", *req.JobDescription)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE opportunity SET %s WHERE id = $%d`, strings.Join(sets, ", "), argID)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return opportunity.ErrOpportunityNotFound
	}

	return nil
}

func (r *opportunityRepository) UpdateStatus(ctx context.Context, id string, status opportunity.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE opportunity SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update opportunity status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return opportunity.ErrOpportunityNotFound
	}

	return nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM opportunity WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return opportunity.ErrOpportunityNotFound
	}

	return nil
}

const candidateLinkColumns = `id, opportunity_id, candidate_id, resume_url, offered_salary, referral_user_id, status, created_at, updated_at`

func scanCandidateLink(row pgx.Row) (opportunity.CandidateLink, error) {
	var l opportunity.CandidateLink
	err := row.Scan(
		&l.ID, &l.OpportunityID, &l.CandidateID, &l.ResumeURL,
		&l.OfferedSalary, &l.ReferralUserID, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *opportunityRepository) CreateLink(ctx context.Context, l opportunity.CandidateLink) (opportunity.CandidateLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO opportunity_candidates (id, opportunity_id, candidate_id, resume_url, offered_salary, referral_user_id, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + candidateLinkColumns

	created, err := scanCandidateLink(q.QueryRow(ctx, query,
		l.OpportunityID, l.CandidateID, l.ResumeURL, l.OfferedSalary, l.ReferralUserID, l.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return opportunity.CandidateLink{}, opportunity.ErrCandidateAlreadyLinked
		}
		return opportunity.CandidateLink{}, fmt.Errorf("failed to link candidate: %w", err)
	}

	return created, nil
}

func (r *opportunityRepository) ListLinksByOpportunity(ctx context.Context, opportunityID string) ([]opportunity.CandidateLinkDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT oc.id, c.id, c.name, oc.resume_url, oc.offered_salary, oc.status, u.name
		FROM opportunity_candidates oc
		JOIN candidates c ON c.id = oc.candidate_id
		LEFT JOIN users u ON u.id = oc.referral_user_id
		WHERE oc.opportunity_id = $1
		ORDER BY oc.created_at
	`

	rows, err := q.Query(ctx, query, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunity candidates: %w", err)
	}
	defer rows.Close()

	var details []opportunity.CandidateLinkDetail
	for rows.Next() {
		var d opportunity.CandidateLinkDetail
		err := rows.Scan(
			&d.LinkID, &d.CandidateID, &d.CandidateName, &d.ResumeURL,
			&d.OfferedSalary, &d.Status, &d.ReferredBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity candidate: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *opportunityRepository) ListLinksByCandidate(ctx context.Context, candidateID string) ([]opportunity.OpportunityLinkDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT oc.id, o.id, o.title, o.company, oc.status, oc.offered_salary
		FROM opportunity_candidates oc
		JOIN opportunity o ON o.id = oc.opportunity_id
		WHERE oc.candidate_id = $1
		ORDER BY oc.created_at
	`

	rows, err := q.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate opportunities: %w", err)
	}
	defer rows.Close()

	var details []opportunity.OpportunityLinkDetail
	for rows.Next() {
		var d opportunity.OpportunityLinkDetail
		err := rows.Scan(&d.LinkID, &d.OpportunityID, &d.Title, &d.Company, &d.Status, &d.OfferedSalary)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate opportunity: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *opportunityRepository) UpdateLink(ctx context.Context, id string, req opportunity.UpdateCandidateLinkRequest) (opportunity.CandidateLink, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE opportunity_candidates
		SET resume_url = COALESCE($2, resume_url),
		    offered_salary = COALESCE($3, offered_salary),
		    status = COALESCE($4, status),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + candidateLinkColumns

	updated, err := scanCandidateLink(q.QueryRow(ctx, query, id, req.ResumeURL, req.OfferedSalary, req.Status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return opportunity.CandidateLink{}, opportunity.ErrCandidateLinkNotFound
		}
		return opportunity.CandidateLink{}, fmt.Errorf("failed to update candidate link: %w", err)
	}

	return updated, nil
}
