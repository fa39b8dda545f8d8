package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/candidate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/compensation"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ===== FAKES =====

type fakeJobRepo struct {
	job.JobRepository
	jobs map[string]job.Job
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id string) (job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ListByPartner(ctx context.Context, partnerCompany string) ([]job.Job, error) {
	var out []job.Job
	for _, j := range f.jobs {
		if j.PartnerCompany != nil && *j.PartnerCompany == partnerCompany {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (f *fakeJobRepo) ListByIDs(ctx context.Context, ids []string) ([]job.Job, error) {
	var out []job.Job
	for _, id := range ids {
		if j, ok := f.jobs[id]; ok {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

type fakeCandidateRepo struct {
	candidate.CandidateRepository
	names map[string]string
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	name, ok := f.names[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrCandidateNotFound
	}
	return candidate.Candidate{ID: id, Name: name}, nil
}

type monthlyKey struct {
	jobID string
	year  int
	month int
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	monthly map[monthlyKey]attendance.MonthlyBreakdown
	days    map[monthlyKey][]attendance.Day
}

func (f *fakeAttendanceRepo) GetMonthly(ctx context.Context, jobID string, year, month int) (attendance.MonthlyBreakdown, error) {
	m, ok := f.monthly[monthlyKey{jobID, year, month}]
	if !ok {
		return attendance.MonthlyBreakdown{}, attendance.ErrAttendanceNotFound
	}
	return m, nil
}

func (f *fakeAttendanceRepo) ListDays(ctx context.Context, jobID string, year, month int) ([]attendance.Day, error) {
	return f.days[monthlyKey{jobID, year, month}], nil
}

type fakeCalendarRepo struct {
	attendance.WorkingCalendarRepository
	workingDays map[[2]int]int
}

func (f *fakeCalendarRepo) Get(ctx context.Context, year, month int) (attendance.WorkingCalendar, error) {
	wd, ok := f.workingDays[[2]int{year, month}]
	if !ok {
		return attendance.WorkingCalendar{}, attendance.ErrWorkingDaysNotSet
	}
	return attendance.WorkingCalendar{Year: year, Month: month, WorkingDays: wd}, nil
}

type fakeInvoiceRepo struct {
	invoice.InvoiceRepository
	nextID   int
	invoices map[string]invoice.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]invoice.Invoice)}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	f.nextID++
	inv.ID = fmt.Sprintf("inv-%d", f.nextID)
	inv.StorageLocator = ""
	inv.CreatedAt = time.Now()
	for i := range inv.LineItems {
		inv.LineItems[i].InvoiceID = inv.ID
	}
	f.invoices[inv.ID] = inv
	return inv, nil
}

func (f *fakeInvoiceRepo) AttachStorageLocator(ctx context.Context, id, locator string) error {
	inv, ok := f.invoices[id]
	if !ok {
		return invoice.ErrInvoiceNotFound
	}
	inv.StorageLocator = locator
	f.invoices[id] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) ListByPeriod(ctx context.Context, p invoice.Period) ([]invoice.Invoice, error) {
	var out []invoice.Invoice
	for _, inv := range f.invoices {
		if inv.Period == p {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

// conflictingInvoiceRepo simulates a collaborator-added uniqueness
// constraint on (scope, period).
type conflictingInvoiceRepo struct {
	invoice.InvoiceRepository
}

func (conflictingInvoiceRepo) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	return invoice.Invoice{}, invoice.ErrDuplicateInvoice
}

// brokenDaysAttendanceRepo fails the day-row lookup while keeping the
// monthly breakdown readable.
type brokenDaysAttendanceRepo struct {
	*fakeAttendanceRepo
}

func (b *brokenDaysAttendanceRepo) ListDays(ctx context.Context, jobID string, year, month int) ([]attendance.Day, error) {
	return nil, errors.New("relation unavailable")
}

type failingRenderer struct{}

func (failingRenderer) Render(inv invoice.Invoice) ([]byte, error) {
	return nil, errors.New("renderer unavailable")
}

func (failingRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (failingRenderer) Filename(inv invoice.Invoice) string { return "broken.txt" }

type fakeFileService struct {
	stored map[string][]byte
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{stored: make(map[string][]byte)}
}

func (f *fakeFileService) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeFileService) StoreInvoiceDocument(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	path := "invoices/" + filename
	f.stored[path] = data
	return path, nil
}

func (f *fakeFileService) StoreEntityDocument(ctx context.Context, entityType string, filename string, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	path := "documents/" + entityType + "/" + filename
	f.stored[path] = data
	return path, nil
}

func (f *fakeFileService) OpenDocument(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.stored[path]
	if !ok {
		return nil, errors.New("document not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error { return nil }

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return path, nil
}

// ===== FIXTURES =====

func partnerOf(name string) *string { return &name }

func newTestService(jobs *fakeJobRepo, att *fakeAttendanceRepo, cal *fakeCalendarRepo, invRepo *fakeInvoiceRepo, renderer render.InvoiceRenderer, files *fakeFileService) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		InvoiceRepository: invRepo,
		jobRepo:           jobs,
		candidateRepo:     &fakeCandidateRepo{names: map[string]string{"cand-1": "Asha Rao", "cand-2": "Ben Ortiz"}},
		attendanceRepo:    att,
		calendarRepo:      cal,
		renderer:          renderer,
		fileService:       files,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func standardFixture() (*fakeJobRepo, *fakeAttendanceRepo, *fakeCalendarRepo) {
	pct := d("10")
	jobs := &fakeJobRepo{jobs: map[string]job.Job{
		"job-a": {
			ID:                   "job-a",
			CandidateID:          "cand-1",
			ClientCompany:        "Acme Corp",
			PartnerCompany:       partnerOf("Globex"),
			CandidateSalary:      d("2200"),
			ClientBillingAmount:  d("3300"),
			CommissionPercentage: &pct,
			PaymentFrequency:     compensation.FrequencyMonthly,
		},
		"job-b": {
			ID:                  "job-b",
			CandidateID:         "cand-2",
			ClientCompany:       "Acme Corp",
			PartnerCompany:      partnerOf("Globex"),
			CandidateSalary:     d("1100"),
			ClientBillingAmount: d("2200"),
			PaymentFrequency:    compensation.FrequencyMonthly,
		},
	}}

	att := &fakeAttendanceRepo{
		monthly: map[monthlyKey]attendance.MonthlyBreakdown{
			{"job-a", 2025, 6}: {
				JobID: "job-a", Year: 2025, Month: 6,
				RegularDaysWorked: 20, WeekendDaysWorked: 1, OvertimeHours: d("3"),
			},
		},
		days: map[monthlyKey][]attendance.Day{},
	}

	cal := &fakeCalendarRepo{workingDays: map[[2]int]int{{2025, 6}: 22}}

	return jobs, att, cal
}

// ===== TESTS =====

func TestGenerateForJob_GoldenAmounts(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	resp, detail, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	// salary side: 2200/22 = 100 daily; 2000 + 200 + 56.25
	assert.True(t, detail.Salary.Total.Equal(d("2256.25")), "salary total = %s", detail.Salary.Total)
	// billing side: 3300/22 = 150 daily; 3000 + 300 + 84.38
	assert.True(t, detail.Billing.Total.Equal(d("3384.38")), "billing total = %s", detail.Billing.Total)
	// commission: 10% of billing total
	assert.True(t, detail.Commission.Equal(d("338.44")), "commission = %s", detail.Commission)
	assert.True(t, detail.NetProfit.Equal(d("789.69")), "net profit = %s", detail.NetProfit)

	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, "job-a", resp.LineItems[0].JobID)
	assert.Equal(t, "Asha Rao", resp.LineItems[0].CandidateName)
	assert.Equal(t, "Acme Corp", resp.LineItems[0].BillingCompany)
	assert.False(t, resp.DocumentPending)
	assert.NotEmpty(t, resp.StorageLocator)
}

func TestGenerateForJob_MissingAttendanceIsTerminal(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	_, _, err := svc.GenerateForJob(context.Background(), "job-b", invoice.Period{Year: 2025, Month: 6})
	assert.ErrorIs(t, err, invoice.ErrMissingAttendance)
	assert.Empty(t, invRepo.invoices, "nothing may be persisted")
}

func TestGenerateForJob_UnknownJob(t *testing.T) {
	jobs, att, cal := standardFixture()
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())

	_, _, err := svc.GenerateForJob(context.Background(), "job-zz", invoice.Period{Year: 2025, Month: 6})
	assert.ErrorIs(t, err, job.ErrJobNotFound)
}

func TestGenerateForPartner_SkipsJobsWithoutAttendance(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	resp, err := svc.GenerateForPartner(context.Background(), invoice.GeneratePartnerInvoiceRequest{
		PartnerCompanyID: "Globex", Year: 2025, Month: 6,
	})
	require.NoError(t, err)

	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, "job-a", resp.LineItems[0].JobID)

	require.Len(t, resp.SkippedJobs, 1)
	assert.Equal(t, "job-b", resp.SkippedJobs[0].JobID)
	assert.Equal(t, invoice.SkipMissingAttendance, resp.SkippedJobs[0].Reason)

	// totals cover job-a alone
	assert.True(t, resp.TotalBillingAmount.Equal(d("3384.38")), "total billing = %s", resp.TotalBillingAmount)
}

func TestGenerateForPartner_NoJobsAtAll(t *testing.T) {
	jobs, att, cal := standardFixture()
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())

	_, err := svc.GenerateForPartner(context.Background(), invoice.GeneratePartnerInvoiceRequest{
		PartnerCompanyID: "Initech", Year: 2025, Month: 6,
	})
	assert.ErrorIs(t, err, invoice.ErrNoJobsFound)
}

func TestGenerateForJobSet_ReportsUnknownJobs(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	resp, err := svc.GenerateForJobSet(context.Background(), invoice.GenerateJobSetInvoiceRequest{
		Year: 2025, Month: 6, JobIDs: []string{"job-a", "job-missing"},
	})
	require.NoError(t, err)

	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, "job-a", resp.LineItems[0].JobID)

	require.Len(t, resp.SkippedJobs, 1)
	assert.Equal(t, "job-missing", resp.SkippedJobs[0].JobID)
	assert.Equal(t, invoice.SkipNotFound, resp.SkippedJobs[0].Reason)
}

func TestGenerateForJobSet_DeterministicOrdering(t *testing.T) {
	jobs, att, cal := standardFixture()
	att.monthly[monthlyKey{"job-b", 2025, 6}] = attendance.MonthlyBreakdown{
		JobID: "job-b", Year: 2025, Month: 6, RegularDaysWorked: 10,
	}

	req := invoice.GenerateJobSetInvoiceRequest{
		Year: 2025, Month: 6, JobIDs: []string{"job-b", "job-a"},
	}

	svc1 := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())
	first, err := svc1.GenerateForJobSet(context.Background(), req)
	require.NoError(t, err)

	svc2 := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())
	second, err := svc2.GenerateForJobSet(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, first.LineItems, 2)
	assert.Equal(t, "job-a", first.LineItems[0].JobID)
	assert.Equal(t, "job-b", first.LineItems[1].JobID)

	require.Len(t, second.LineItems, 2)
	for i := range first.LineItems {
		assert.Equal(t, first.LineItems[i].JobID, second.LineItems[i].JobID)
		assert.True(t, first.LineItems[i].BilledAmount.Equal(second.LineItems[i].BilledAmount))
		assert.True(t, first.LineItems[i].SalaryAmount.Equal(second.LineItems[i].SalaryAmount))
	}
	assert.True(t, first.TotalBillingAmount.Equal(second.TotalBillingAmount))
}

func TestGenerateForJob_ZeroPresentDays(t *testing.T) {
	jobs, att, cal := standardFixture()
	att.monthly[monthlyKey{"job-b", 2025, 6}] = attendance.MonthlyBreakdown{
		JobID: "job-b", Year: 2025, Month: 6,
	}
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())

	resp, detail, err := svc.GenerateForJob(context.Background(), "job-b", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	assert.True(t, detail.Billing.Total.IsZero())
	assert.True(t, detail.Salary.Total.IsZero())
	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, 0, resp.LineItems[0].PresentDays)
	assert.True(t, resp.LineItems[0].BilledAmount.IsZero())
}

func TestGenerateForJob_RenderFailureLeavesInvoiceCommitted(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, failingRenderer{}, newFakeFileService())

	resp, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err, "render failure must not fail the request")

	assert.True(t, resp.DocumentPending)
	assert.Empty(t, resp.StorageLocator)

	stored, err := invRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.StorageLocator)
	assert.True(t, stored.TotalBillingAmount.Equal(resp.TotalBillingAmount))
}

func TestRetryDocument_AttachesLocatorWithoutTouchingTotals(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	files := newFakeFileService()
	svc := newTestService(jobs, att, cal, invRepo, failingRenderer{}, files)

	resp, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)
	require.Empty(t, resp.StorageLocator)

	before, err := invRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)

	// renderer recovers
	svc.renderer = render.NewTextRenderer()
	locator, err := svc.RetryDocument(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, locator)

	after, err := invRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, locator, after.StorageLocator)
	assert.True(t, before.TotalBillingAmount.Equal(after.TotalBillingAmount))
	assert.True(t, before.TotalSalaryAmount.Equal(after.TotalSalaryAmount))
	assert.True(t, before.TotalCommission.Equal(after.TotalCommission))
	assert.True(t, before.NetProfit.Equal(after.NetProfit))
}

func TestGenerateForPartner_WorkingCalendarMissing(t *testing.T) {
	jobs, att, _ := standardFixture()
	cal := &fakeCalendarRepo{workingDays: map[[2]int]int{}}
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())

	_, err := svc.GenerateForPartner(context.Background(), invoice.GeneratePartnerInvoiceRequest{
		PartnerCompanyID: "Globex", Year: 2025, Month: 6,
	})
	assert.ErrorIs(t, err, attendance.ErrWorkingDaysNotSet)
}

func TestGenerateForJob_DuplicateInvoiceSurfaces(t *testing.T) {
	jobs, att, cal := standardFixture()
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())
	svc.InvoiceRepository = conflictingInvoiceRepo{}

	_, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	assert.ErrorIs(t, err, invoice.ErrDuplicateInvoice)
}

func TestPresenceStats_FallsBackWhenDayLookupFails(t *testing.T) {
	jobs, att, cal := standardFixture()
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())
	svc.attendanceRepo = &brokenDaysAttendanceRepo{att}

	resp, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err, "a failed day lookup must not fail the invoice")

	// 20 regular + 1 weekend days, 8h each, plus 3h overtime
	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, 21, resp.LineItems[0].PresentDays)
	assert.True(t, resp.LineItems[0].TotalHours.Equal(d("171")), "total hours = %s", resp.LineItems[0].TotalHours)
}

func TestGetByID_ReturnsMappedResponse(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	created, err := svc.GenerateForPartner(context.Background(), invoice.GeneratePartnerInvoiceRequest{
		PartnerCompanyID: "Globex", Year: 2025, Month: 6,
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Partner Globex", fetched.Scope)
	assert.Equal(t, invoice.Period{Year: 2025, Month: 6}, fetched.Period)
	assert.True(t, fetched.TotalBillingAmount.Equal(created.TotalBillingAmount))
	require.Len(t, fetched.LineItems, 1)
	assert.Equal(t, "job-a", fetched.LineItems[0].JobID)
	assert.False(t, fetched.DocumentPending)
	assert.NotEmpty(t, fetched.StorageLocator)
}

func TestGetByID_PendingDocumentReported(t *testing.T) {
	jobs, att, cal := standardFixture()
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, failingRenderer{}, newFakeFileService())

	created, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.DocumentPending)
	assert.Empty(t, fetched.StorageLocator)
}

func TestListByPeriod_ReturnsMappedResponses(t *testing.T) {
	jobs, att, cal := standardFixture()
	att.monthly[monthlyKey{"job-b", 2025, 6}] = attendance.MonthlyBreakdown{
		JobID: "job-b", Year: 2025, Month: 6, RegularDaysWorked: 10,
	}
	invRepo := newFakeInvoiceRepo()
	svc := newTestService(jobs, att, cal, invRepo, render.NewTextRenderer(), newFakeFileService())

	_, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)
	_, _, err = svc.GenerateForJob(context.Background(), "job-b", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	results, err := svc.ListByPeriod(context.Background(), invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Job job-a", results[0].Scope)
	assert.Equal(t, "Job job-b", results[1].Scope)

	empty, err := svc.ListByPeriod(context.Background(), invoice.Period{Year: 2025, Month: 7})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPresenceStats_PrefersDayRows(t *testing.T) {
	jobs, att, cal := standardFixture()
	att.days[monthlyKey{"job-a", 2025, 6}] = []attendance.Day{
		{JobID: "job-a", DayOfMonth: 2, Status: attendance.DayStatusPresent, HoursWorked: d("8")},
		{JobID: "job-a", DayOfMonth: 3, Status: attendance.DayStatusPresent, HoursWorked: d("7.5")},
		{JobID: "job-a", DayOfMonth: 4, Status: attendance.DayStatusAbsent, HoursWorked: d("0")},
	}
	svc := newTestService(jobs, att, cal, newFakeInvoiceRepo(), render.NewTextRenderer(), newFakeFileService())

	resp, _, err := svc.GenerateForJob(context.Background(), "job-a", invoice.Period{Year: 2025, Month: 6})
	require.NoError(t, err)

	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, 2, resp.LineItems[0].PresentDays)
	assert.True(t, resp.LineItems[0].TotalHours.Equal(d("15.5")), "total hours = %s", resp.LineItems[0].TotalHours)
}
