package attendance

import "context"

type AttendanceRepository interface {
	UpsertDay(ctx context.Context, d Day) (Day, error)
	GetDay(ctx context.Context, jobID string, year, month, day int) (Day, error)
	GetDayByID(ctx context.Context, id string) (Day, error)
	ListDays(ctx context.Context, jobID string, year, month int) ([]Day, error)

	UpsertMonthly(ctx context.Context, m MonthlyBreakdown) (MonthlyBreakdown, error)
	GetMonthly(ctx context.Context, jobID string, year, month int) (MonthlyBreakdown, error)
	ListMonthlyByJob(ctx context.Context, jobID string) ([]MonthlyBreakdown, error)
}

type WorkingCalendarRepository interface {
	Set(ctx context.Context, c WorkingCalendar) (WorkingCalendar, error)
	Get(ctx context.Context, year, month int) (WorkingCalendar, error)
	List(ctx context.Context, year int) ([]WorkingCalendar, error)
}
