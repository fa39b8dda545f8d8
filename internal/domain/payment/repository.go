package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	List(ctx context.Context) ([]Payment, error)
	MonthlyReport(ctx context.Context, year, month int) (MonthlyReport, error)
}
