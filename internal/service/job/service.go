package job

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/opportunity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type JobServiceImpl struct {
	db *database.DB
	job.JobRepository
	opportunityRepo opportunity.OpportunityRepository
	candidateRepo   candidate.CandidateRepository
	invoiceRepo     invoice.InvoiceRepository
	attendanceRepo  attendance.AttendanceRepository
}

func NewJobService(
	db *database.DB,
	jobRepository job.JobRepository,
	opportunityRepository opportunity.OpportunityRepository,
	candidateRepository candidate.CandidateRepository,
	invoiceRepository invoice.InvoiceRepository,
	attendanceRepository attendance.AttendanceRepository,
) job.JobService {
	return &JobServiceImpl{
		db:              db,
		JobRepository:   jobRepository,
		opportunityRepo: opportunityRepository,
		candidateRepo:   candidateRepository,
		invoiceRepo:     invoiceRepository,
		attendanceRepo:  attendanceRepository,
	}
}

// Create opens the placement and marks the opportunity filled in the
// same transaction.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.Job, error) {
	if _, err := s.opportunityRepo.GetByID(ctx, req.OpportunityID); err != nil {
		return job.Job{}, err
	}
	if _, err := s.candidateRepo.GetByID(ctx, req.CandidateID); err != nil {
		return job.Job{}, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return job.Job{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		endDate = &parsed
	}

	currency := "USD"
	if req.PaymentCurrency != nil && *req.PaymentCurrency != "" {
		currency = *req.PaymentCurrency
	}

	var created job.Job
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.JobRepository.Create(txCtx, job.Job{
			OpportunityID:        req.OpportunityID,
			CandidateID:          req.CandidateID,
			ClientCompany:        req.ClientCompany,
			PartnerCompany:       req.PartnerCompany,
			CandidateSalary:      req.CandidateSalary,
			ClientBillingAmount:  req.ClientBillingAmount,
			HourlyRate:           req.HourlyRate,
			CommissionPercentage: req.CommissionPercentage,
			PaymentFrequency:     req.PaymentFrequency,
			PaymentCurrency:      currency,
			StartDate:            startDate,
			EndDate:              endDate,
		})
		if err != nil {
			return err
		}

		return s.opportunityRepo.UpdateStatus(txCtx, req.OpportunityID, opportunity.StatusFilled)
	})
	if err != nil {
		return job.Job{}, err
	}

	return created, nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (job.JobDetail, error) {
	return s.GetDetailByID(ctx, id)
}

func (s *JobServiceImpl) ProfitMargin(ctx context.Context, id string) (job.ProfitMarginResponse, error) {
	detail, err := s.GetDetailByID(ctx, id)
	if err != nil {
		return job.ProfitMarginResponse{}, err
	}

	margin := detail.ClientBillingAmount.Sub(detail.CandidateSalary)
	percentage := decimal.Zero
	if !detail.ClientBillingAmount.IsZero() {
		percentage = margin.Div(detail.ClientBillingAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	end := time.Now()
	if detail.EndDate != nil {
		end = *detail.EndDate
	}
	daysDuration := int(end.Sub(detail.StartDate).Hours() / 24)

	resp := job.ProfitMarginResponse{
		JobID:               detail.ID,
		OpportunityTitle:    detail.OpportunityTitle,
		CandidateName:       detail.CandidateName,
		CandidateSalary:     detail.CandidateSalary,
		ClientBillingAmount: detail.ClientBillingAmount,
		ProfitMargin:        margin,
		ProfitPercentage:    percentage,
		PaymentFrequency:    string(detail.PaymentFrequency),
		PaymentCurrency:     detail.PaymentCurrency,
		StartDate:           detail.StartDate.Format(dateLayout),
		DaysDuration:        daysDuration,
	}
	if detail.EndDate != nil {
		formatted := detail.EndDate.Format(dateLayout)
		resp.EndDate = &formatted
	}

	return resp, nil
}

func (s *JobServiceImpl) FinanceDetail(ctx context.Context, id string) (job.FinanceDetail, error) {
	detail, err := s.GetDetailByID(ctx, id)
	if err != nil {
		return job.FinanceDetail{}, err
	}

	invoices, err := s.invoiceRepo.ListByJob(ctx, id)
	if err != nil {
		return job.FinanceDetail{}, err
	}

	attendanceRecords, err := s.attendanceRepo.ListMonthlyByJob(ctx, id)
	if err != nil {
		return job.FinanceDetail{}, err
	}

	summary := job.FinancialSummary{
		TotalBilling:    decimal.Zero,
		TotalSalary:     decimal.Zero,
		TotalCommission: decimal.Zero,
		TotalProfit:     decimal.Zero,
	}
	for _, inv := range invoices {
		summary.TotalBilling = summary.TotalBilling.Add(inv.TotalBillingAmount)
		summary.TotalSalary = summary.TotalSalary.Add(inv.TotalSalaryAmount)
		summary.TotalCommission = summary.TotalCommission.Add(inv.TotalCommission)
		summary.TotalProfit = summary.TotalProfit.Add(inv.NetProfit)
	}
	summary.AverageMonthlyProfit = decimal.Zero
	if len(invoices) > 0 {
		summary.AverageMonthlyProfit = summary.TotalProfit.DivRound(decimal.NewFromInt(int64(len(invoices))), 2)
	}

	return job.FinanceDetail{
		Job:               detail,
		FinancialSummary:  summary,
		Invoices:          invoices,
		AttendanceRecords: attendanceRecords,
	}, nil
}
