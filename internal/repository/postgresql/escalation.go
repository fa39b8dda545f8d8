package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/escalation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type escalationRepository struct {
	db *database.DB
}

func NewEscalationRepository(db *database.DB) escalation.EscalationRepository {
	return &escalationRepository{db: db}
}

func (r *escalationRepository) Create(ctx context.Context, e escalation.Escalation) (escalation.Escalation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO escalations (id, candidate_id, job_id, reason, status, escalation_date, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, candidate_id, job_id, reason, status, resolution, escalation_date, resolved_at, created_at
	`

	var created escalation.Escalation
	err := q.QueryRow(ctx, query,
		e.CandidateID, e.JobID, e.Reason, escalation.StatusOpen, e.EscalationDate,
	).Scan(
		&created.ID, &created.CandidateID, &created.JobID, &created.Reason,
		&created.Status, &created.Resolution, &created.EscalationDate,
		&created.ResolvedAt, &created.CreatedAt,
	)
	if err != nil {
		return escalation.Escalation{}, fmt.Errorf("failed to create escalation: %w", err)
	}

	return created, nil
}

func (r *escalationRepository) List(ctx context.Context) ([]escalation.Escalation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, candidate_id, job_id, reason, status, resolution, escalation_date, resolved_at, created_at
		FROM escalations
		ORDER BY escalation_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalations: %w", err)
	}
	defer rows.Close()

	var escalations []escalation.Escalation
	for rows.Next() {
		var e escalation.Escalation
		err := rows.Scan(
			&e.ID, &e.CandidateID, &e.JobID, &e.Reason, &e.Status, &e.Resolution,
			&e.EscalationDate, &e.ResolvedAt, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan escalation: %w", err)
		}
		escalations = append(escalations, e)
	}

	return escalations, rows.Err()
}

func (r *escalationRepository) Resolve(ctx context.Context, id, resolution string) (escalation.Escalation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE escalations
		SET status = $2, resolution = $3, resolved_at = NOW()
		WHERE id = $1
		RETURNING id, candidate_id, job_id, reason, status, resolution, escalation_date, resolved_at, created_at
	`

	var resolved escalation.Escalation
	err := q.QueryRow(ctx, query, id, escalation.StatusResolved, resolution).Scan(
		&resolved.ID, &resolved.CandidateID, &resolved.JobID, &resolved.Reason,
		&resolved.Status, &resolved.Resolution, &resolved.EscalationDate,
		&resolved.ResolvedAt, &resolved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return escalation.Escalation{}, escalation.ErrEscalationNotFound
		}
		return escalation.Escalation{}, fmt.Errorf("failed to resolve escalation: %w", err)
	}

	return resolved, nil
}
