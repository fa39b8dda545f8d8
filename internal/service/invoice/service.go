package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/compensation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/render"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/repository/postgresql"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/service/file"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type InvoiceServiceImpl struct {
	invoice.InvoiceRepository
	jobRepo        job.JobRepository
	candidateRepo  candidate.CandidateRepository
	attendanceRepo attendance.AttendanceRepository
	calendarRepo   attendance.WorkingCalendarRepository
	renderer       render.InvoiceRenderer
	fileService    file.FileService
	inTx           func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepository invoice.InvoiceRepository,
	jobRepository job.JobRepository,
	candidateRepository candidate.CandidateRepository,
	attendanceRepository attendance.AttendanceRepository,
	calendarRepository attendance.WorkingCalendarRepository,
	renderer render.InvoiceRenderer,
	fileService file.FileService,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		InvoiceRepository: invoiceRepository,
		jobRepo:           jobRepository,
		candidateRepo:     candidateRepository,
		attendanceRepo:    attendanceRepository,
		calendarRepo:      calendarRepository,
		renderer:          renderer,
		fileService:       fileService,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

// jobLine is one job's computed contribution before commit.
type jobLine struct {
	item       invoice.LineItem
	salary     compensation.Result
	billing    compensation.Result
	commission decimal.Decimal
	breakdown  compensation.Breakdown
	leaves     int
}

// aggregate resolves the scope, computes every line item in ascending
// job-id order, and returns the not-yet-persisted invoice value.
func (s *InvoiceServiceImpl) aggregate(ctx context.Context, scope invoice.Scope, p invoice.Period) (invoice.Invoice, []jobLine, []invoice.JobDiagnostic, error) {
	jobs, diagnostics, err := s.resolveJobs(ctx, scope, p)
	if err != nil {
		return invoice.Invoice{}, nil, nil, err
	}

	calendar, err := s.calendarRepo.Get(ctx, p.Year, p.Month)
	if err != nil {
		return invoice.Invoice{}, nil, nil, err
	}

	singleJob := scope.Kind == invoice.ScopeSingleJob

	var lines []jobLine
	for _, j := range jobs {
		line, err := s.computeLine(ctx, j, p, calendar.WorkingDays)
		if err != nil {
			if errors.Is(err, invoice.ErrMissingAttendance) {
				if singleJob {
					return invoice.Invoice{}, nil, nil, err
				}
				diagnostics = append(diagnostics, invoice.JobDiagnostic{JobID: j.ID, Reason: invoice.SkipMissingAttendance})
				continue
			}
			return invoice.Invoice{}, nil, nil, err
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return invoice.Invoice{}, nil, diagnostics, invoice.ErrNoJobsFound
	}

	scopeKey := scope.Key()
	if scope.Kind == invoice.ScopeJobIDs {
		// The original system files explicit job-set invoices under the
		// partner of the first job.
		if jobs[0].PartnerCompany != nil {
			scopeKey = *jobs[0].PartnerCompany
		}
	}

	inv := invoice.Invoice{
		ScopeKind:          scope.Kind,
		ScopeKey:           scopeKey,
		Period:             p,
		TotalBillingAmount: decimal.Zero,
		TotalSalaryAmount:  decimal.Zero,
		TotalCommission:    decimal.Zero,
		NetProfit:          decimal.Zero,
	}
	for _, line := range lines {
		inv.TotalBillingAmount = inv.TotalBillingAmount.Add(line.billing.Total)
		inv.TotalSalaryAmount = inv.TotalSalaryAmount.Add(line.salary.Total)
		inv.TotalCommission = inv.TotalCommission.Add(line.commission)
		inv.NetProfit = inv.NetProfit.Add(line.billing.Total.Sub(line.salary.Total).Sub(line.commission))
		inv.LineItems = append(inv.LineItems, line.item)
	}

	return inv, lines, diagnostics, nil
}

// resolveJobs returns the scope's job set sorted by ascending job id so
// totals accumulate in a reproducible order.
func (s *InvoiceServiceImpl) resolveJobs(ctx context.Context, scope invoice.Scope, p invoice.Period) ([]job.Job, []invoice.JobDiagnostic, error) {
	var diagnostics []invoice.JobDiagnostic

	switch scope.Kind {
	case invoice.ScopeSingleJob:
		j, err := s.jobRepo.GetByID(ctx, scope.JobID)
		if err != nil {
			return nil, nil, err
		}
		return []job.Job{j}, nil, nil

	case invoice.ScopePartner:
		jobs, err := s.jobRepo.ListByPartner(ctx, scope.PartnerCompany)
		if err != nil {
			return nil, nil, err
		}
		if len(jobs) == 0 {
			return nil, nil, invoice.ErrNoJobsFound
		}
		return jobs, nil, nil

	case invoice.ScopeJobIDs:
		jobs, err := s.jobRepo.ListByIDs(ctx, scope.JobIDs)
		if err != nil {
			return nil, nil, err
		}
		found := make(map[string]bool, len(jobs))
		for _, j := range jobs {
			found[j.ID] = true
		}
		missing := make([]string, 0)
		for _, id := range scope.JobIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		for _, id := range missing {
			diagnostics = append(diagnostics, invoice.JobDiagnostic{JobID: id, Reason: invoice.SkipNotFound})
		}
		if len(jobs) == 0 {
			return nil, diagnostics, invoice.ErrNoJobsFound
		}
		return jobs, diagnostics, nil

	default:
		return nil, nil, fmt.Errorf("unknown invoice scope %q", scope.Kind)
	}
}

// computeLine runs the compensation calculator twice for one job, once
// for the candidate side and once for the billing side, both over the
// same attendance breakdown and working-day count.
func (s *InvoiceServiceImpl) computeLine(ctx context.Context, j job.Job, p invoice.Period, workingDays int) (jobLine, error) {
	monthly, err := s.attendanceRepo.GetMonthly(ctx, j.ID, p.Year, p.Month)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return jobLine{}, invoice.ErrMissingAttendance
		}
		return jobLine{}, err
	}

	breakdown := compensation.Breakdown{
		RegularDays:   monthly.RegularDaysWorked,
		WeekendDays:   monthly.WeekendDaysWorked,
		HolidayDays:   monthly.HolidayDaysWorked,
		LeavesTaken:   monthly.LeavesTaken,
		OvertimeHours: monthly.OvertimeHours,
	}

	salary, err := compensation.Compute(j.SalaryBase(), j.PaymentFrequency, breakdown, workingDays)
	if err != nil {
		return jobLine{}, err
	}
	billing, err := compensation.Compute(j.BillingBase(), j.PaymentFrequency, breakdown, workingDays)
	if err != nil {
		return jobLine{}, err
	}

	commission := decimal.Zero
	if j.CommissionPercentage != nil {
		commission = billing.Total.Mul(*j.CommissionPercentage).DivRound(oneHundred, 2)
	}

	candidateName := j.CandidateID
	if c, err := s.candidateRepo.GetByID(ctx, j.CandidateID); err == nil {
		candidateName = c.Name
	}

	presentDays, totalHours := s.presenceStats(ctx, j.ID, p, breakdown)

	return jobLine{
		item: invoice.LineItem{
			JobID:          j.ID,
			CandidateName:  candidateName,
			BillingCompany: j.ClientCompany,
			PresentDays:    presentDays,
			TotalHours:     totalHours,
			BilledAmount:   billing.Total,
			SalaryAmount:   salary.Total,
		},
		salary:     salary,
		billing:    billing,
		commission: commission,
		breakdown:  breakdown,
		leaves:     monthly.LeavesTaken,
	}, nil
}

// presenceStats prefers the per-day rows; when none exist the monthly
// breakdown is folded into equivalent figures.
func (s *InvoiceServiceImpl) presenceStats(ctx context.Context, jobID string, p invoice.Period, b compensation.Breakdown) (int, decimal.Decimal) {
	days, err := s.attendanceRepo.ListDays(ctx, jobID, p.Year, p.Month)
	if err != nil {
		slog.Warn("Failed to list attendance days, deriving presence from the monthly breakdown", "job_id", jobID, "error", err)
	} else if len(days) > 0 {
		summary := attendance.Summarize(days)
		return summary.PresentDays, summary.TotalHours
	}

	workedDays := b.RegularDays + b.WeekendDays + b.HolidayDays
	hours := decimal.NewFromInt(int64(workedDays)).Mul(compensation.StandardWorkHours).Add(b.OvertimeHours)
	return workedDays, hours
}

// commit persists the aggregate and its line items atomically.
func (s *InvoiceServiceImpl) commit(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	var committed invoice.Invoice
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		committed, err = s.InvoiceRepository.Create(ctx, inv)
		return err
	})
	if err != nil {
		return invoice.Invoice{}, err
	}
	return committed, nil
}

// renderAndStore renders the committed invoice and attaches the storage
// locator. Failures leave the invoice valid with an empty locator; the
// document can be regenerated later.
func (s *InvoiceServiceImpl) renderAndStore(ctx context.Context, inv invoice.Invoice) (string, bool) {
	body, err := s.renderer.Render(inv)
	if err != nil {
		slog.Warn("Failed to render invoice document", "invoice_id", inv.ID, "error", err)
		return "", false
	}

	locator, err := s.fileService.StoreInvoiceDocument(ctx, s.renderer.Filename(inv), s.renderer.ContentType(), bytes.NewReader(body))
	if err != nil {
		slog.Warn("Failed to store invoice document", "invoice_id", inv.ID, "error", err)
		return "", false
	}

	if err := s.AttachStorageLocator(ctx, inv.ID, locator); err != nil {
		slog.Warn("Failed to attach storage locator", "invoice_id", inv.ID, "error", err)
		return "", false
	}

	return locator, true
}

func (s *InvoiceServiceImpl) generate(ctx context.Context, scope invoice.Scope, p invoice.Period) (invoice.Invoice, []jobLine, []invoice.JobDiagnostic, bool, error) {
	inv, lines, diagnostics, err := s.aggregate(ctx, scope, p)
	if err != nil {
		return invoice.Invoice{}, nil, diagnostics, false, err
	}

	committed, err := s.commit(ctx, inv)
	if err != nil {
		return invoice.Invoice{}, nil, diagnostics, false, err
	}

	locator, stored := s.renderAndStore(ctx, committed)
	if stored {
		committed.StorageLocator = locator
	}

	return committed, lines, diagnostics, !stored, nil
}

func toResponse(inv invoice.Invoice, scope invoice.Scope, diagnostics []invoice.JobDiagnostic, documentPending bool) invoice.InvoiceResponse {
	resp := invoice.InvoiceResponse{
		ID:                 inv.ID,
		Scope:              scope.Label(),
		Period:             inv.Period,
		TotalBillingAmount: inv.TotalBillingAmount,
		TotalSalaryAmount:  inv.TotalSalaryAmount,
		TotalCommission:    inv.TotalCommission,
		NetProfit:          inv.NetProfit,
		StorageLocator:     inv.StorageLocator,
		SkippedJobs:        diagnostics,
		DocumentPending:    documentPending,
	}
	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, invoice.LineItemResponse{
			JobID:          li.JobID,
			CandidateName:  li.CandidateName,
			BillingCompany: li.BillingCompany,
			PresentDays:    li.PresentDays,
			TotalHours:     li.TotalHours,
			BilledAmount:   li.BilledAmount,
			SalaryAmount:   li.SalaryAmount,
		})
	}
	return resp
}

func (s *InvoiceServiceImpl) GenerateForJob(ctx context.Context, jobID string, p invoice.Period) (invoice.InvoiceResponse, invoice.SingleJobInvoiceDetail, error) {
	scope := invoice.SingleJobScope(jobID)

	committed, lines, diagnostics, pending, err := s.generate(ctx, scope, p)
	if err != nil {
		return invoice.InvoiceResponse{}, invoice.SingleJobInvoiceDetail{}, err
	}

	line := lines[0]
	detail := invoice.SingleJobInvoiceDetail{
		Period: p,
		Attendance: invoice.AttendanceEcho{
			RegularDays:   line.breakdown.RegularDays,
			WeekendDays:   line.breakdown.WeekendDays,
			HolidayDays:   line.breakdown.HolidayDays,
			OvertimeHours: line.breakdown.OvertimeHours,
			LeavesTaken:   line.leaves,
		},
		Billing:    line.billing,
		Salary:     line.salary,
		Commission: line.commission,
		NetProfit:  committed.NetProfit,
	}

	return toResponse(committed, scope, diagnostics, pending), detail, nil
}

func (s *InvoiceServiceImpl) GenerateForPartner(ctx context.Context, req invoice.GeneratePartnerInvoiceRequest) (invoice.InvoiceResponse, error) {
	scope := invoice.PartnerScope(req.PartnerCompanyID)
	p := invoice.Period{Year: req.Year, Month: req.Month}

	committed, _, diagnostics, pending, err := s.generate(ctx, scope, p)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return toResponse(committed, scope, diagnostics, pending), nil
}

func (s *InvoiceServiceImpl) GenerateForJobSet(ctx context.Context, req invoice.GenerateJobSetInvoiceRequest) (invoice.InvoiceResponse, error) {
	scope := invoice.JobIDsScope(req.JobIDs)
	p := invoice.Period{Year: req.Year, Month: req.Month}

	committed, _, diagnostics, pending, err := s.generate(ctx, scope, p)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return toResponse(committed, scope, diagnostics, pending), nil
}

// scopeOf rebuilds the scope of a stored invoice for display. Job-set
// invoices recover their member ids from the line items.
func scopeOf(inv invoice.Invoice) invoice.Scope {
	switch inv.ScopeKind {
	case invoice.ScopeSingleJob:
		return invoice.SingleJobScope(inv.ScopeKey)
	case invoice.ScopePartner:
		return invoice.PartnerScope(inv.ScopeKey)
	default:
		ids := make([]string, 0, len(inv.LineItems))
		for _, li := range inv.LineItems {
			ids = append(ids, li.JobID)
		}
		return invoice.JobIDsScope(ids)
	}
}

func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toResponse(inv, scopeOf(inv), nil, inv.StorageLocator == ""), nil
}

func (s *InvoiceServiceImpl) ListByPeriod(ctx context.Context, p invoice.Period) ([]invoice.InvoiceResponse, error) {
	invoices, err := s.InvoiceRepository.ListByPeriod(ctx, p)
	if err != nil {
		return nil, err
	}

	responses := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, toResponse(inv, scopeOf(inv), nil, inv.StorageLocator == ""))
	}
	return responses, nil
}

func (s *InvoiceServiceImpl) RetryDocument(ctx context.Context, id string) (string, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	locator, stored := s.renderAndStore(ctx, inv)
	if !stored {
		return "", fmt.Errorf("failed to regenerate document for invoice %s", id)
	}

	return locator, nil
}

func (s *InvoiceServiceImpl) Document(ctx context.Context, id string) (io.ReadCloser, string, string, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, "", "", err
	}
	if inv.StorageLocator == "" {
		return nil, "", "", invoice.ErrInvoiceNotFound
	}

	body, err := s.fileService.OpenDocument(ctx, inv.StorageLocator)
	if err != nil {
		return nil, "", "", err
	}

	return body, s.renderer.ContentType(), s.renderer.Filename(inv), nil
}
