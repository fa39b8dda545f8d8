package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_MonthlySalary(t *testing.T) {
	att := Breakdown{
		RegularDays:   20,
		WeekendDays:   1,
		HolidayDays:   0,
		OvertimeHours: d("3"),
	}

	res, err := Compute(d("2200"), FrequencyMonthly, att, 22)
	require.NoError(t, err)

	assert.True(t, res.Regular.Equal(d("2000")), "regular = %s", res.Regular)
	assert.True(t, res.Weekend.Equal(d("200")), "weekend = %s", res.Weekend)
	assert.True(t, res.Holiday.IsZero(), "holiday = %s", res.Holiday)
	assert.True(t, res.Overtime.Equal(d("56.25")), "overtime = %s", res.Overtime)
	assert.True(t, res.Total.Equal(d("2256.25")), "total = %s", res.Total)
}

func TestCompute_HourlyRate(t *testing.T) {
	att := Breakdown{
		RegularDays:   10,
		WeekendDays:   2,
		OvertimeHours: d("4"),
	}

	res, err := Compute(d("25"), FrequencyWeekly, att, 22)
	require.NoError(t, err)

	// daily rate = 25 * 8 = 200
	assert.True(t, res.Regular.Equal(d("2000")), "regular = %s", res.Regular)
	assert.True(t, res.Weekend.Equal(d("800")), "weekend = %s", res.Weekend)
	// overtime uses the hourly quote directly: 25 * 4 * 1.5
	assert.True(t, res.Overtime.Equal(d("150")), "overtime = %s", res.Overtime)
	assert.True(t, res.Total.Equal(d("2950")), "total = %s", res.Total)
}

func TestCompute_TotalIsExactSumOfComponents(t *testing.T) {
	cases := []struct {
		name        string
		base        string
		freq        Frequency
		att         Breakdown
		workingDays int
	}{
		{"even division", "2200", FrequencyMonthly, Breakdown{RegularDays: 20, WeekendDays: 1, OvertimeHours: d("3")}, 22},
		{"uneven division", "3000", FrequencyMonthly, Breakdown{RegularDays: 17, WeekendDays: 2, HolidayDays: 1, OvertimeHours: d("5.5")}, 21},
		{"repeating decimal", "1000", FrequencyMonthly, Breakdown{RegularDays: 23, OvertimeHours: d("7")}, 23},
		{"hourly", "18.75", FrequencyBiWeekly, Breakdown{RegularDays: 12, WeekendDays: 3, HolidayDays: 1, OvertimeHours: d("10.25")}, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Compute(d(tc.base), tc.freq, tc.att, tc.workingDays)
			require.NoError(t, err)

			sum := res.Regular.Add(res.Weekend).Add(res.Holiday).Add(res.Overtime)
			assert.True(t, res.Total.Equal(sum), "total %s != sum %s", res.Total, sum)
		})
	}
}

func TestCompute_OvertimeIncreasesTotal(t *testing.T) {
	att := Breakdown{RegularDays: 20, OvertimeHours: d("2")}

	base, err := Compute(d("2200"), FrequencyMonthly, att, 22)
	require.NoError(t, err)

	att.OvertimeHours = d("3")
	more, err := Compute(d("2200"), FrequencyMonthly, att, 22)
	require.NoError(t, err)

	assert.True(t, more.Total.GreaterThan(base.Total))
}

func TestCompute_ZeroAttendance(t *testing.T) {
	res, err := Compute(d("2200"), FrequencyMonthly, Breakdown{}, 22)
	require.NoError(t, err)

	assert.True(t, res.Total.IsZero())
	assert.True(t, res.Regular.IsZero())
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name        string
		base        string
		freq        Frequency
		att         Breakdown
		workingDays int
	}{
		{"zero working days", "2200", FrequencyMonthly, Breakdown{}, 0},
		{"negative working days", "2200", FrequencyMonthly, Breakdown{}, -1},
		{"negative base", "-100", FrequencyMonthly, Breakdown{}, 22},
		{"negative regular days", "2200", FrequencyMonthly, Breakdown{RegularDays: -1}, 22},
		{"negative overtime", "2200", FrequencyMonthly, Breakdown{OvertimeHours: d("-1")}, 22},
		{"unknown frequency", "2200", Frequency("yearly"), Breakdown{}, 22},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(d(tc.base), tc.freq, tc.att, tc.workingDays)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	base := d("2200")
	att := Breakdown{RegularDays: 20, OvertimeHours: d("3")}

	_, err := Compute(base, FrequencyMonthly, att, 22)
	require.NoError(t, err)

	assert.True(t, base.Equal(d("2200")))
	assert.True(t, att.OvertimeHours.Equal(d("3")))
	assert.Equal(t, 20, att.RegularDays)
}
