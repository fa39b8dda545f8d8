package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type jobRepository struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, opportunity_id, candidate_id, client_company, partner_company,
	candidate_salary, client_billing_amount, hourly_rate, commission_percentage,
	payment_frequency, payment_currency, start_date, end_date, status, created_at, updated_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.OpportunityID, &j.CandidateID, &j.ClientCompany, &j.PartnerCompany,
		&j.CandidateSalary, &j.ClientBillingAmount, &j.HourlyRate, &j.CommissionPercentage,
		&j.PaymentFrequency, &j.PaymentCurrency, &j.StartDate, &j.EndDate, &j.Status,
		&j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

func (r *jobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (id, opportunity_id, candidate_id, client_company, partner_company,
			candidate_salary, client_billing_amount, hourly_rate, commission_percentage,
			payment_frequency, payment_currency, start_date, end_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query,
		j.OpportunityID, j.CandidateID, j.ClientCompany, j.PartnerCompany,
		j.CandidateSalary, j.ClientBillingAmount, j.HourlyRate, j.CommissionPercentage,
		j.PaymentFrequency, j.PaymentCurrency, j.StartDate, j.EndDate, job.StatusActive,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	j, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

func (r *jobRepository) GetDetailByID(ctx context.Context, id string) (job.JobDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.opportunity_id, j.candidate_id, j.client_company, j.partner_company,
			j.candidate_salary, j.client_billing_amount, j.hourly_rate, j.commission_percentage,
			j.payment_frequency, j.payment_currency, j.start_date, j.end_date, j.status,
			j.created_at, j.updated_at,
			o.title, c.name, c.email
		FROM jobs j
		JOIN opportunity o ON j.opportunity_id = o.id
		JOIN candidates c ON j.candidate_id = c.id
		WHERE j.id = $1
	`

	var d job.JobDetail
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.OpportunityID, &d.CandidateID, &d.ClientCompany, &d.PartnerCompany,
		&d.CandidateSalary, &d.ClientBillingAmount, &d.HourlyRate, &d.CommissionPercentage,
		&d.PaymentFrequency, &d.PaymentCurrency, &d.StartDate, &d.EndDate, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
		&d.OpportunityTitle, &d.CandidateName, &d.CandidateEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.JobDetail{}, job.ErrJobNotFound
		}
		return job.JobDetail{}, fmt.Errorf("failed to get job detail: %w", err)
	}

	return d, nil
}

func (r *jobRepository) List(ctx context.Context) ([]job.JobDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.opportunity_id, j.candidate_id, j.client_company, j.partner_company,
			j.candidate_salary, j.client_billing_amount, j.hourly_rate, j.commission_percentage,
			j.payment_frequency, j.payment_currency, j.start_date, j.end_date, j.status,
			j.created_at, j.updated_at,
			o.title, c.name, c.email
		FROM jobs j
		JOIN opportunity o ON j.opportunity_id = o.id
		JOIN candidates c ON j.candidate_id = c.id
		ORDER BY j.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var details []job.JobDetail
	for rows.Next() {
		var d job.JobDetail
		err := rows.Scan(
			&d.ID, &d.OpportunityID, &d.CandidateID, &d.ClientCompany, &d.PartnerCompany,
			&d.CandidateSalary, &d.ClientBillingAmount, &d.HourlyRate, &d.CommissionPercentage,
			&d.PaymentFrequency, &d.PaymentCurrency, &d.StartDate, &d.EndDate, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
			&d.OpportunityTitle, &d.CandidateName, &d.CandidateEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *jobRepository) ListByPartner(ctx context.Context, partnerCompany string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE partner_company = $1 ORDER BY id ASC`

	rows, err := q.Query(ctx, query, partnerCompany)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by partner: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *jobRepository) ListByIDs(ctx context.Context, ids []string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ANY($1) ORDER BY id ASC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by ids: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, req job.UpdateJobRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if req.ClientCompany != nil {
		addSet("client_company", *req.ClientCompany)
	}
	if req.PartnerCompany != nil {
		addSet("partner_company", *req.PartnerCompany)
	}
	if req.CandidateSalary != nil {
		addSet("candidate_salary", *req.CandidateSalary)
	}
	if req.ClientBillingAmount != nil {
		addSet("client_billing_amount", *req.ClientBillingAmount)
	}
	if req.HourlyRate != nil {
		addSet("hourly_rate", *req.HourlyRate)
	}
	if req.CommissionPercentage != nil {
		addSet("commission_percentage", *req.CommissionPercentage)
	}
	if req.PaymentFrequency != nil {
		addSet("payment_frequency", *req.PaymentFrequency)
	}
	if req.PaymentCurrency != nil {
		addSet("payment_currency", *req.PaymentCurrency)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		addSet("end_date", *req.EndDate)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	if len(sets) == 0 {
		return job.ErrNoFieldsToSet
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d`, strings.Join(sets, ", "), argID)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

func (r *jobRepository) ActiveSummary(ctx context.Context) (job.ActiveJobsSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(client_billing_amount), 0),
			COALESCE(SUM(candidate_salary), 0),
			COALESCE(SUM(client_billing_amount - candidate_salary), 0),
			COALESCE(AVG((client_billing_amount - candidate_salary) / NULLIF(client_billing_amount, 0) * 100), 0)
		FROM jobs
		WHERE status = $1
	`

	var s job.ActiveJobsSummary
	err := q.QueryRow(ctx, query, job.StatusActive).Scan(
		&s.TotalActiveJobs, &s.TotalBillingAmount, &s.TotalSalaryCost, &s.TotalProfit, &s.AvgProfitPercentage,
	)
	if err != nil {
		return job.ActiveJobsSummary{}, fmt.Errorf("failed to get active jobs summary: %w", err)
	}

	return s, nil
}
