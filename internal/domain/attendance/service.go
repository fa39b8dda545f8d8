package attendance

import "context"

type AttendanceService interface {
	UpsertDay(ctx context.Context, req UpsertDayRequest) (Day, error)
	GetDayByID(ctx context.Context, id string) (Day, error)
	GetDayByDate(ctx context.Context, jobID string, year, month, day int) (Day, error)
	MonthlyView(ctx context.Context, jobID string, year, month int) (MonthlyAttendanceResponse, error)

	UpsertMonthly(ctx context.Context, req UpsertMonthlyRequest) (MonthlyBreakdown, error)
	GetMonthly(ctx context.Context, jobID string, year, month int) (MonthlyBreakdown, WorkingCalendar, error)

	SetWorkingDays(ctx context.Context, req SetWorkingDaysRequest) (WorkingCalendar, error)
	ListWorkingDays(ctx context.Context, year int) ([]WorkingCalendar, error)
}
