package attendance

import (
	"context"
	"fmt"
	"testing"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	job.JobRepository
	ids map[string]bool
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id string) (job.Job, error) {
	if !f.ids[id] {
		return job.Job{}, job.ErrJobNotFound
	}
	return job.Job{ID: id}, nil
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

type monthlyKey struct {
	jobID string
	year  int
	month int
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	monthly map[monthlyKey]attendance.MonthlyBreakdown
	days    map[string]attendance.Day
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		monthly: make(map[monthlyKey]attendance.MonthlyBreakdown),
		days:    make(map[string]attendance.Day),
	}
}

func dayKey(jobID string, year, month, day int) string {
	return fmt.Sprintf("%s/%d/%d/%d", jobID, year, month, day)
}

func (f *fakeAttendanceRepo) UpsertMonthly(ctx context.Context, m attendance.MonthlyBreakdown) (attendance.MonthlyBreakdown, error) {
	f.monthly[monthlyKey{m.JobID, m.Year, m.Month}] = m
	return m, nil
}

func (f *fakeAttendanceRepo) UpsertDay(ctx context.Context, d attendance.Day) (attendance.Day, error) {
	f.days[dayKey(d.JobID, d.Year, d.Month, d.DayOfMonth)] = d
	return d, nil
}

func (f *fakeAttendanceRepo) GetDay(ctx context.Context, jobID string, year, month, day int) (attendance.Day, error) {
	d, ok := f.days[dayKey(jobID, year, month, day)]
	if !ok {
		return attendance.Day{}, attendance.ErrAttendanceNotFound
	}
	return d, nil
}

func newTestService(jobs *fakeJobRepo, att *fakeAttendanceRepo, cal *fakeCalendarRepo) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: att,
		calendarRepo:         cal,
		jobRepo:              jobs,
	}
}

func TestUpsertMonthly_RejectsMoreRegularDaysThanWorkingDays(t *testing.T) {
	jobs := &fakeJobRepo{ids: map[string]bool{"job-a": true}}
	att := newFakeAttendanceRepo()
	cal := &fakeCalendarRepo{workingDays: map[[2]int]int{{2025, 6}: 22}}
	svc := newTestService(jobs, att, cal)

	_, err := svc.UpsertMonthly(context.Background(), attendance.UpsertMonthlyRequest{
		JobID: "job-a", Year: 2025, Month: 6, RegularDaysWorked: 23,
	})
	assert.ErrorIs(t, err, attendance.ErrRegularDaysExceeded)
	assert.Empty(t, att.monthly, "nothing may be persisted")
}

func TestUpsertMonthly_AcceptsRegularDaysUpToWorkingDays(t *testing.T) {
	jobs := &fakeJobRepo{ids: map[string]bool{"job-a": true}}
	att := newFakeAttendanceRepo()
	cal := &fakeCalendarRepo{workingDays: map[[2]int]int{{2025, 6}: 22}}
	svc := newTestService(jobs, att, cal)

	stored, err := svc.UpsertMonthly(context.Background(), attendance.UpsertMonthlyRequest{
		JobID: "job-a", Year: 2025, Month: 6,
		RegularDaysWorked: 22, WeekendDaysWorked: 1, OvertimeHours: decimal.RequireFromString("3"),
	})
	require.NoError(t, err)

	assert.Equal(t, 22, stored.RegularDaysWorked)
	assert.Equal(t, 1, stored.WeekendDaysWorked)
	assert.Len(t, att.monthly, 1)
}

func TestUpsertMonthly_RequiresWorkingCalendar(t *testing.T) {
	jobs := &fakeJobRepo{ids: map[string]bool{"job-a": true}}
	svc := newTestService(jobs, newFakeAttendanceRepo(), &fakeCalendarRepo{workingDays: map[[2]int]int{}})

	_, err := svc.UpsertMonthly(context.Background(), attendance.UpsertMonthlyRequest{
		JobID: "job-a", Year: 2025, Month: 6, RegularDaysWorked: 10,
	})
	assert.ErrorIs(t, err, attendance.ErrWorkingDaysNotSet)
}

func TestUpsertMonthly_UnknownJob(t *testing.T) {
	jobs := &fakeJobRepo{ids: map[string]bool{}}
	cal := &fakeCalendarRepo{workingDays: map[[2]int]int{{2025, 6}: 22}}
	svc := newTestService(jobs, newFakeAttendanceRepo(), cal)

	_, err := svc.UpsertMonthly(context.Background(), attendance.UpsertMonthlyRequest{
		JobID: "job-zz", Year: 2025, Month: 6,
	})
	assert.ErrorIs(t, err, job.ErrJobNotFound)
}

func TestUpsertDay_KeepsExistingFieldsWhenUnset(t *testing.T) {
	jobs := &fakeJobRepo{ids: map[string]bool{"job-a": true}}
	att := newFakeAttendanceRepo()
	svc := newTestService(jobs, att, &fakeCalendarRepo{})

	in := "09:00"
	hours := decimal.RequireFromString("8")
	_, err := svc.UpsertDay(context.Background(), attendance.UpsertDayRequest{
		JobID: "job-a", Year: 2025, Month: 6, DayOfMonth: 3,
		TimeIn: &in, HoursWorked: &hours,
	})
	require.NoError(t, err)

	out := "17:30"
	updated, err := svc.UpsertDay(context.Background(), attendance.UpsertDayRequest{
		JobID: "job-a", Year: 2025, Month: 6, DayOfMonth: 3,
		TimeOut: &out,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TimeIn)
	assert.Equal(t, "09:00", *updated.TimeIn)
	require.NotNil(t, updated.TimeOut)
	assert.Equal(t, "17:30", *updated.TimeOut)
	assert.True(t, updated.HoursWorked.Equal(hours))
}
