package postgresql

import (
	"context"
	"fmt"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/payment"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, candidate_id, job_id, salary, client_payment, payment_date, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, candidate_id, job_id, salary, client_payment, payment_date, created_at
	`

	var created payment.Payment
	err := q.QueryRow(ctx, query,
		p.CandidateID, p.JobID, p.Salary, p.ClientPayment, p.PaymentDate,
	).Scan(
		&created.ID, &created.CandidateID, &created.JobID, &created.Salary,
		&created.ClientPayment, &created.PaymentDate, &created.CreatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, candidate_id, job_id, salary, client_payment, payment_date, created_at
		FROM payments
		ORDER BY payment_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.CandidateID, &p.JobID, &p.Salary,
			&p.ClientPayment, &p.PaymentDate, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) MonthlyReport(ctx context.Context, year, month int) (payment.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(client_payment), 0),
			COALESCE(SUM(salary), 0),
			COALESCE(SUM(client_payment - salary), 0)
		FROM payments
		WHERE EXTRACT(YEAR FROM payment_date) = $1 AND EXTRACT(MONTH FROM payment_date) = $2
	`

	var report payment.MonthlyReport
	err := q.QueryRow(ctx, query, year, month).Scan(
		&report.TotalRevenue, &report.TotalSalary, &report.TotalProfit,
	)
	if err != nil {
		return payment.MonthlyReport{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	return report, nil
}
