package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/activity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type activityRepository struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `a.id, a.parent_type, a.parent_id, a.activity_type, a.subject, a.description,
	a.status, a.due_date, a.start_time, a.end_time, a.location, a.call_duration,
	a.email_recipients, a.cc, a.bcc, a.attachments, a.additional_info, a.user_id,
	COALESCE(u.name, 'System'), a.created_at, a.updated_at`

const activityJoin = ` FROM activities a LEFT JOIN users u ON u.id = a.user_id`

func scanActivity(row pgx.Row) (activity.Activity, error) {
	var a activity.Activity
	var attachmentsJSON, infoJSON []byte

	err := row.Scan(
		&a.ID, &a.ParentType, &a.ParentID, &a.Type, &a.Subject, &a.Description,
		&a.Status, &a.DueDate, &a.StartTime, &a.EndTime, &a.Location, &a.CallDuration,
		&a.EmailRecipients, &a.CC, &a.BCC, &attachmentsJSON, &infoJSON, &a.UserID,
		&a.UserName, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return activity.Activity{}, err
	}

	if len(attachmentsJSON) > 0 {
		if err := json.Unmarshal(attachmentsJSON, &a.Attachments); err != nil {
			return activity.Activity{}, fmt.Errorf("failed to decode attachments: %w", err)
		}
	}
	if len(infoJSON) > 0 {
		if err := json.Unmarshal(infoJSON, &a.AdditionalInfo); err != nil {
			return activity.Activity{}, fmt.Errorf("failed to decode additional info: %w", err)
		}
	}

	return a, nil
}

func encodeActivityJSON(a activity.Activity) ([]byte, []byte, error) {
	attachmentsJSON, err := json.Marshal(a.Attachments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode attachments: %w", err)
	}
	infoJSON, err := json.Marshal(a.AdditionalInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode additional info: %w", err)
	}
	return attachmentsJSON, infoJSON, nil
}

func (r *activityRepository) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	attachmentsJSON, infoJSON, err := encodeActivityJSON(a)
	if err != nil {
		return activity.Activity{}, err
	}

	query := `
		WITH inserted AS (
			INSERT INTO activities (id, parent_type, parent_id, activity_type, subject, description,
				status, due_date, start_time, end_time, location, call_duration,
				email_recipients, cc, bcc, attachments, additional_info, user_id, created_at, updated_at)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + activityColumns + ` FROM inserted a LEFT JOIN users u ON u.id = a.user_id`

	created, err := scanActivity(q.QueryRow(ctx, query,
		a.ParentType, a.ParentID, a.Type, a.Subject, a.Description,
		a.Status, a.DueDate, a.StartTime, a.EndTime, a.Location, a.CallDuration,
		a.EmailRecipients, a.CC, a.BCC, attachmentsJSON, infoJSON, a.UserID,
	))
	if err != nil {
		return activity.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}

	return created, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + activityJoin + ` WHERE a.id = $1`

	a, err := scanActivity(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return activity.Activity{}, activity.ErrActivityNotFound
		}
		return activity.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}

	return a, nil
}

func (r *activityRepository) collect(rows pgx.Rows) ([]activity.Activity, error) {
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (r *activityRepository) ListByParent(ctx context.Context, parentType, parentID string) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + activityJoin + `
		WHERE a.parent_type = $1 AND a.parent_id = $2
		ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return r.collect(rows)
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + activityJoin + `
		ORDER BY a.created_at DESC
		LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}

	return r.collect(rows)
}

func (r *activityRepository) ListOverdue(ctx context.Context) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + activityJoin + `
		WHERE a.due_date < CURRENT_DATE AND a.status <> $1
		ORDER BY a.due_date`

	rows, err := q.Query(ctx, query, activity.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue activities: %w", err)
	}

	return r.collect(rows)
}

func (r *activityRepository) ListUpcoming(ctx context.Context, days int) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + activityJoin + `
		WHERE a.due_date BETWEEN CURRENT_DATE AND CURRENT_DATE + $1 AND a.status <> $2
		ORDER BY a.due_date`

	rows, err := q.Query(ctx, query, days, activity.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming activities: %w", err)
	}

	return r.collect(rows)
}

func (r *activityRepository) Update(ctx context.Context, id string, a activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	attachmentsJSON, infoJSON, err := encodeActivityJSON(a)
	if err != nil {
		return activity.Activity{}, err
	}

	query := `
		WITH updated AS (
			UPDATE activities
			SET subject = $2, description = $3, status = $4, due_date = $5,
				start_time = $6, end_time = $7, location = $8, call_duration = $9,
				email_recipients = $10, cc = $11, bcc = $12, attachments = $13,
				additional_info = $14, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + activityColumns + ` FROM updated a LEFT JOIN users u ON u.id = a.user_id`

	updated, err := scanActivity(q.QueryRow(ctx, query,
		id, a.Subject, a.Description, a.Status, a.DueDate,
		a.StartTime, a.EndTime, a.Location, a.CallDuration,
		a.EmailRecipients, a.CC, a.BCC, attachmentsJSON, infoJSON,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return activity.Activity{}, activity.ErrActivityNotFound
		}
		return activity.Activity{}, fmt.Errorf("failed to update activity: %w", err)
	}

	return updated, nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}

	return nil
}
