package attendance

import (
	"context"
	"errors"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/attendance"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/job"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	calendarRepo attendance.WorkingCalendarRepository
	jobRepo      job.JobRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	calendarRepository attendance.WorkingCalendarRepository,
	jobRepository job.JobRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		calendarRepo:         calendarRepository,
		jobRepo:              jobRepository,
	}
}

func (s *AttendanceServiceImpl) UpsertDay(ctx context.Context, req attendance.UpsertDayRequest) (attendance.Day, error) {
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return attendance.Day{}, err
	}

	day := attendance.Day{
		JobID:      req.JobID,
		Year:       req.Year,
		Month:      req.Month,
		DayOfMonth: req.DayOfMonth,
		Status:     attendance.DayStatusPresent,
	}

	// The upsert keeps existing values when the request leaves a field
	// unset and a record already exists.
	existing, err := s.GetDay(ctx, req.JobID, req.Year, req.Month, req.DayOfMonth)
	if err == nil {
		day = existing
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Day{}, err
	}

	if req.Status != nil {
		day.Status = *req.Status
	}
	if req.TimeIn != nil {
		day.TimeIn = req.TimeIn
	}
	if req.TimeOut != nil {
		day.TimeOut = req.TimeOut
	}
	if req.HoursWorked != nil {
		day.HoursWorked = *req.HoursWorked
	} else if day.HoursWorked.IsZero() {
		day.HoursWorked = decimal.Zero
	}
	if req.Notes != nil {
		day.Notes = *req.Notes
	}

	return s.AttendanceRepository.UpsertDay(ctx, day)
}

func (s *AttendanceServiceImpl) GetDayByDate(ctx context.Context, jobID string, year, month, day int) (attendance.Day, error) {
	return s.GetDay(ctx, jobID, year, month, day)
}

func (s *AttendanceServiceImpl) MonthlyView(ctx context.Context, jobID string, year, month int) (attendance.MonthlyAttendanceResponse, error) {
	days, err := s.ListDays(ctx, jobID, year, month)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	return attendance.MonthlyAttendanceResponse{
		JobID:      jobID,
		Year:       year,
		Month:      month,
		Summary:    attendance.Summarize(days),
		Attendance: days,
	}, nil
}

func (s *AttendanceServiceImpl) UpsertMonthly(ctx context.Context, req attendance.UpsertMonthlyRequest) (attendance.MonthlyBreakdown, error) {
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return attendance.MonthlyBreakdown{}, err
	}

	calendar, err := s.calendarRepo.Get(ctx, req.Year, req.Month)
	if err != nil {
		return attendance.MonthlyBreakdown{}, err
	}
	if req.RegularDaysWorked > calendar.WorkingDays {
		return attendance.MonthlyBreakdown{}, attendance.ErrRegularDaysExceeded
	}

	return s.AttendanceRepository.UpsertMonthly(ctx, attendance.MonthlyBreakdown{
		JobID:             req.JobID,
		Year:              req.Year,
		Month:             req.Month,
		RegularDaysWorked: req.RegularDaysWorked,
		WeekendDaysWorked: req.WeekendDaysWorked,
		HolidayDaysWorked: req.HolidayDaysWorked,
		LeavesTaken:       req.LeavesTaken,
		OvertimeHours:     req.OvertimeHours,
		Notes:             req.Notes,
	})
}

func (s *AttendanceServiceImpl) GetMonthly(ctx context.Context, jobID string, year, month int) (attendance.MonthlyBreakdown, attendance.WorkingCalendar, error) {
	monthly, err := s.AttendanceRepository.GetMonthly(ctx, jobID, year, month)
	if err != nil {
		return attendance.MonthlyBreakdown{}, attendance.WorkingCalendar{}, err
	}

	calendar, err := s.calendarRepo.Get(ctx, year, month)
	if err != nil {
		return attendance.MonthlyBreakdown{}, attendance.WorkingCalendar{}, err
	}

	return monthly, calendar, nil
}

func (s *AttendanceServiceImpl) SetWorkingDays(ctx context.Context, req attendance.SetWorkingDaysRequest) (attendance.WorkingCalendar, error) {
	return s.calendarRepo.Set(ctx, attendance.WorkingCalendar{
		Year:        req.Year,
		Month:       req.Month,
		WorkingDays: req.WorkingDays,
	})
}

func (s *AttendanceServiceImpl) ListWorkingDays(ctx context.Context, year int) ([]attendance.WorkingCalendar, error) {
	return s.calendarRepo.List(ctx, year)
}
