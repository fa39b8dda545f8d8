package job

import (
	"context"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (Job, error)
	GetByID(ctx context.Context, id string) (JobDetail, error)
	List(ctx context.Context) ([]JobDetail, error)
	Update(ctx context.Context, req UpdateJobRequest) error
	Delete(ctx context.Context, id string) error
	ProfitMargin(ctx context.Context, id string) (ProfitMarginResponse, error)
	ActiveSummary(ctx context.Context) (ActiveJobsSummary, error)
	FinanceDetail(ctx context.Context, id string) (FinanceDetail, error)
}

// FinanceDetail is the full financial picture of one job: its invoices,
// its attendance history, and running totals over the invoices.
type FinanceDetail struct {
	Job               JobDetail                     `json:"job_details"`
	FinancialSummary  FinancialSummary              `json:"financial_summary"`
	Invoices          []invoice.Invoice             `json:"monthly_invoices"`
	AttendanceRecords []attendance.MonthlyBreakdown `json:"attendance_records"`
}

type FinancialSummary struct {
	TotalBilling         decimal.Decimal `json:"total_billing"`
	TotalSalary          decimal.Decimal `json:"total_salary"`
	TotalCommission      decimal.Decimal `json:"total_commission"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	AverageMonthlyProfit decimal.Decimal `json:"average_monthly_profit"`
}
