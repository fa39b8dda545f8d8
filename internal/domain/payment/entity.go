package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string
	CandidateID   string
	JobID         string
	Salary        decimal.Decimal
	ClientPayment decimal.Decimal
	PaymentDate   time.Time
	CreatedAt     time.Time
}

// MonthlyReport sums payments whose payment date falls in one period.
type MonthlyReport struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSalary  decimal.Decimal `json:"total_salary"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}
