package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const dayColumns = `id, job_id, year, month, day, status, time_in, time_out, hours_worked, notes, created_at, updated_at`

func scanDay(row pgx.Row) (attendance.Day, error) {
	var d attendance.Day
	err := row.Scan(
		&d.ID, &d.JobID, &d.Year, &d.Month, &d.DayOfMonth, &d.Status,
		&d.TimeIn, &d.TimeOut, &d.HoursWorked, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *attendanceRepository) UpsertDay(ctx context.Context, d attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_attendance_days (id, job_id, year, month, day, status, time_in, time_out, hours_worked, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (job_id, year, month, day) DO UPDATE SET
			status = EXCLUDED.status,
			time_in = EXCLUDED.time_in,
			time_out = EXCLUDED.time_out,
			hours_worked = EXCLUDED.hours_worked,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + dayColumns

	saved, err := scanDay(q.QueryRow(ctx, query,
		d.JobID, d.Year, d.Month, d.DayOfMonth, d.Status, d.TimeIn, d.TimeOut, d.HoursWorked, d.Notes,
	))
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to upsert attendance day: %w", err)
	}

	return saved, nil
}

func (r *attendanceRepository) GetDay(ctx context.Context, jobID string, year, month, day int) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayColumns + ` FROM job_attendance_days WHERE job_id = $1 AND year = $2 AND month = $3 AND day = $4`

	d, err := scanDay(q.QueryRow(ctx, query, jobID, year, month, day))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Day{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Day{}, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return d, nil
}

func (r *attendanceRepository) GetDayByID(ctx context.Context, id string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayColumns + ` FROM job_attendance_days WHERE id = $1`

	d, err := scanDay(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Day{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Day{}, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return d, nil
}

func (r *attendanceRepository) ListDays(ctx context.Context, jobID string, year, month int) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayColumns + ` FROM job_attendance_days WHERE job_id = $1 AND year = $2 AND month = $3 ORDER BY day ASC`

	rows, err := q.Query(ctx, query, jobID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

const monthlyColumns = `id, job_id, year, month, regular_days_worked, weekend_days_worked, holiday_days_worked, leaves_taken, overtime_hours, notes, created_at, updated_at`

func scanMonthly(row pgx.Row) (attendance.MonthlyBreakdown, error) {
	var m attendance.MonthlyBreakdown
	err := row.Scan(
		&m.ID, &m.JobID, &m.Year, &m.Month, &m.RegularDaysWorked, &m.WeekendDaysWorked,
		&m.HolidayDaysWorked, &m.LeavesTaken, &m.OvertimeHours, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *attendanceRepository) UpsertMonthly(ctx context.Context, m attendance.MonthlyBreakdown) (attendance.MonthlyBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_attendance_monthly (id, job_id, year, month, regular_days_worked, weekend_days_worked, holiday_days_worked, leaves_taken, overtime_hours, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (job_id, year, month) DO UPDATE SET
			regular_days_worked = EXCLUDED.regular_days_worked,
			weekend_days_worked = EXCLUDED.weekend_days_worked,
			holiday_days_worked = EXCLUDED.holiday_days_worked,
			leaves_taken = EXCLUDED.leaves_taken,
			overtime_hours = EXCLUDED.overtime_hours,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + monthlyColumns

	saved, err := scanMonthly(q.QueryRow(ctx, query,
		m.JobID, m.Year, m.Month, m.RegularDaysWorked, m.WeekendDaysWorked,
		m.HolidayDaysWorked, m.LeavesTaken, m.OvertimeHours, m.Notes,
	))
	if err != nil {
		return attendance.MonthlyBreakdown{}, fmt.Errorf("failed to upsert monthly attendance: %w", err)
	}

	return saved, nil
}

func (r *attendanceRepository) GetMonthly(ctx context.Context, jobID string, year, month int) (attendance.MonthlyBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlyColumns + ` FROM job_attendance_monthly WHERE job_id = $1 AND year = $2 AND month = $3`

	m, err := scanMonthly(q.QueryRow(ctx, query, jobID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.MonthlyBreakdown{}, attendance.ErrAttendanceNotFound
		}
		return attendance.MonthlyBreakdown{}, fmt.Errorf("failed to get monthly attendance: %w", err)
	}

	return m, nil
}

func (r *attendanceRepository) ListMonthlyByJob(ctx context.Context, jobID string) ([]attendance.MonthlyBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlyColumns + ` FROM job_attendance_monthly WHERE job_id = $1 ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	defer rows.Close()

	var months []attendance.MonthlyBreakdown
	for rows.Next() {
		m, err := scanMonthly(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly attendance: %w", err)
		}
		months = append(months, m)
	}

	return months, rows.Err()
}

type workingCalendarRepository struct {
	db *database.DB
}

func NewWorkingCalendarRepository(db *database.DB) attendance.WorkingCalendarRepository {
	return &workingCalendarRepository{db: db}
}

func (r *workingCalendarRepository) Set(ctx context.Context, c attendance.WorkingCalendar) (attendance.WorkingCalendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_workdays (year, month, working_days, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (year, month) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			updated_at = NOW()
		RETURNING year, month, working_days, updated_at
	`

	var saved attendance.WorkingCalendar
	err := q.QueryRow(ctx, query, c.Year, c.Month, c.WorkingDays).Scan(
		&saved.Year, &saved.Month, &saved.WorkingDays, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.WorkingCalendar{}, fmt.Errorf("failed to set working calendar: %w", err)
	}

	return saved, nil
}

func (r *workingCalendarRepository) Get(ctx context.Context, year, month int) (attendance.WorkingCalendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT year, month, working_days, updated_at FROM monthly_workdays WHERE year = $1 AND month = $2`

	var c attendance.WorkingCalendar
	err := q.QueryRow(ctx, query, year, month).Scan(&c.Year, &c.Month, &c.WorkingDays, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.WorkingCalendar{}, attendance.ErrWorkingDaysNotSet
		}
		return attendance.WorkingCalendar{}, fmt.Errorf("failed to get working calendar: %w", err)
	}

	return c, nil
}

func (r *workingCalendarRepository) List(ctx context.Context, year int) ([]attendance.WorkingCalendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT year, month, working_days, updated_at FROM monthly_workdays WHERE year = $1 ORDER BY month ASC`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list working calendar: %w", err)
	}
	defer rows.Close()

	var calendars []attendance.WorkingCalendar
	for rows.Next() {
		var c attendance.WorkingCalendar
		if err := rows.Scan(&c.Year, &c.Month, &c.WorkingDays, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan working calendar: %w", err)
		}
		calendars = append(calendars, c)
	}

	return calendars, rows.Err()
}
