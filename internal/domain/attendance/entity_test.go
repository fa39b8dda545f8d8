package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(status DayStatus, hours string) Day {
	return Day{Status: status, HoursWorked: decimal.RequireFromString(hours)}
}

func TestSummarize(t *testing.T) {
	days := []Day{
		day(DayStatusPresent, "8"),
		day(DayStatusPresent, "7.5"),
		day(DayStatusHalfDay, "4"),
		day(DayStatusAbsent, "0"),
		day(DayStatusLeave, "0"),
		day(DayStatusHoliday, "0"),
		day(DayStatusWeekend, "0"),
		day(DayStatusWeekend, "0"),
	}

	s := Summarize(days)

	assert.Equal(t, 8, s.TotalDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, 1, s.Leaves)
	assert.Equal(t, 1, s.Holidays)
	assert.Equal(t, 2, s.Weekends)
	assert.True(t, s.TotalHours.Equal(decimal.RequireFromString("19.5")), "total hours %s", s.TotalHours)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0, s.PresentDays)
	assert.True(t, s.TotalHours.IsZero())
}

func TestDayStatusValid(t *testing.T) {
	for _, status := range []DayStatus{
		DayStatusPresent, DayStatusAbsent, DayStatusHalfDay,
		DayStatusLeave, DayStatusHoliday, DayStatusWeekend,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, DayStatus("vacation").Valid())
	assert.False(t, DayStatus("").Valid())
}
