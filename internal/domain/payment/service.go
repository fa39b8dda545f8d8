package payment

import "context"

type PaymentService interface {
	Create(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	List(ctx context.Context) ([]Payment, error)
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
