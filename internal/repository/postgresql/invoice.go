package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, scope_kind, scope_key, period_year, period_month,
	total_billing_amount, total_salary_amount, total_commission, net_profit,
	storage_locator, created_at, updated_at`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.ScopeKind, &inv.ScopeKey, &inv.Period.Year, &inv.Period.Month,
		&inv.TotalBillingAmount, &inv.TotalSalaryAmount, &inv.TotalCommission, &inv.NetProfit,
		&inv.StorageLocator, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create writes the aggregate row and all line items. Callers run it
// inside WithTransaction so a line-item failure rolls the aggregate
// back.
func (r *invoiceRepository) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (id, scope_kind, scope_key, period_year, period_month,
			total_billing_amount, total_salary_amount, total_commission, net_profit,
			storage_locator, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, '', NOW(), NOW())
		RETURNING ` + invoiceColumns

	created, err := scanInvoice(q.QueryRow(ctx, query,
		inv.ScopeKind, inv.ScopeKey, inv.Period.Year, inv.Period.Month,
		inv.TotalBillingAmount, inv.TotalSalaryAmount, inv.TotalCommission, inv.NetProfit,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return invoice.Invoice{}, invoice.ErrDuplicateInvoice
		}
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	lineQuery := `
		INSERT INTO invoice_line_items (id, invoice_id, job_id, candidate_name, billing_company,
			present_days, total_hours, billed_amount, salary_amount)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	for i := range inv.LineItems {
		li := inv.LineItems[i]
		var lineID string
		err := q.QueryRow(ctx, lineQuery,
			created.ID, li.JobID, li.CandidateName, li.BillingCompany,
			li.PresentDays, li.TotalHours, li.BilledAmount, li.SalaryAmount,
		).Scan(&lineID)
		if err != nil {
			return invoice.Invoice{}, fmt.Errorf("failed to create invoice line item: %w", err)
		}
		li.ID = lineID
		li.InvoiceID = created.ID
		created.LineItems = append(created.LineItems, li)
	}

	return created, nil
}

// AttachStorageLocator updates only the storage locator. A second call
// after a re-render overwrites the previous value.
func (r *invoiceRepository) AttachStorageLocator(ctx context.Context, id, locator string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE invoices SET storage_locator = $1, updated_at = NOW() WHERE id = $2`, locator, id)
	if err != nil {
		return fmt.Errorf("failed to attach storage locator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	items, err := r.lineItems(ctx, inv.ID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.LineItems = items

	return inv, nil
}

func (r *invoiceRepository) ListByJob(ctx context.Context, jobID string) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id IN (SELECT invoice_id FROM invoice_line_items WHERE job_id = $1)
		ORDER BY period_year DESC, period_month DESC
	`

	return r.listWithItems(ctx, q, query, jobID)
}

func (r *invoiceRepository) ListByPeriod(ctx context.Context, p invoice.Period) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE period_year = $1 AND period_month = $2
		ORDER BY created_at DESC
	`

	return r.listWithItems(ctx, q, query, p.Year, p.Month)
}

func (r *invoiceRepository) listWithItems(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]invoice.Invoice, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range invoices {
		items, err := r.lineItems(ctx, invoices[i].ID)
		if err != nil {
			return nil, err
		}
		invoices[i].LineItems = items
	}

	return invoices, nil
}

func (r *invoiceRepository) lineItems(ctx context.Context, invoiceID string) ([]invoice.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invoice_id, job_id, candidate_name, billing_company,
			present_days, total_hours, billed_amount, salary_amount
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY job_id ASC
	`

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice line items: %w", err)
	}
	defer rows.Close()

	var items []invoice.LineItem
	for rows.Next() {
		var li invoice.LineItem
		err := rows.Scan(
			&li.ID, &li.InvoiceID, &li.JobID, &li.CandidateName, &li.BillingCompany,
			&li.PresentDays, &li.TotalHours, &li.BilledAmount, &li.SalaryAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		items = append(items, li)
	}

	return items, rows.Err()
}
