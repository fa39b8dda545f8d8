package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusHalfDay DayStatus = "half_day"
	DayStatusLeave   DayStatus = "leave"
	DayStatusHoliday DayStatus = "holiday"
	DayStatusWeekend DayStatus = "weekend"
)

func (s DayStatus) Valid() bool {
	switch s {
	case DayStatusPresent, DayStatusAbsent, DayStatusHalfDay, DayStatusLeave, DayStatusHoliday, DayStatusWeekend:
		return true
	}
	return false
}

// Day is a single calendar-day attendance record for a job.
type Day struct {
	ID          string
	JobID       string
	Year        int
	Month       int
	DayOfMonth  int
	Status      DayStatus
	TimeIn      *string
	TimeOut     *string
	HoursWorked decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MonthlyBreakdown is the per-month aggregate the compensation
// calculator consumes. Upserts replace the previous row for the same
// job and period.
type MonthlyBreakdown struct {
	ID                string
	JobID             string
	Year              int
	Month             int
	RegularDaysWorked int
	WeekendDaysWorked int
	HolidayDaysWorked int
	LeavesTaken       int
	OvertimeHours     decimal.Decimal
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MonthSummary is derived from the day rows of one job and period.
type MonthSummary struct {
	TotalDays   int             `json:"total_days"`
	PresentDays int             `json:"present_days"`
	AbsentDays  int             `json:"absent_days"`
	HalfDays    int             `json:"half_days"`
	Leaves      int             `json:"leaves"`
	Holidays    int             `json:"holidays"`
	Weekends    int             `json:"weekends"`
	TotalHours  decimal.Decimal `json:"total_hours"`
}

// Summarize folds day rows into a MonthSummary.
func Summarize(days []Day) MonthSummary {
	s := MonthSummary{TotalDays: len(days), TotalHours: decimal.Zero}
	for _, d := range days {
		switch d.Status {
		case DayStatusPresent:
			s.PresentDays++
		case DayStatusAbsent:
			s.AbsentDays++
		case DayStatusHalfDay:
			s.HalfDays++
		case DayStatusLeave:
			s.Leaves++
		case DayStatusHoliday:
			s.Holidays++
		case DayStatusWeekend:
			s.Weekends++
		}
		s.TotalHours = s.TotalHours.Add(d.HoursWorked)
	}
	return s
}

// WorkingCalendar holds the number of working days for one period. It
// is the reference the compensation calculator divides monthly salaries
// by.
type WorkingCalendar struct {
	Year        int
	Month       int
	WorkingDays int
	UpdatedAt   time.Time
}
