package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod(2025, 1))
	assert.True(t, IsValidPeriod(2020, 12))
	assert.False(t, IsValidPeriod(2025, 0))
	assert.False(t, IsValidPeriod(2025, 13))
	assert.False(t, IsValidPeriod(2019, 6))
	assert.False(t, IsValidPeriod(20250, 6))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2025, 4))
}

func TestIsValidDayOfMonth(t *testing.T) {
	assert.True(t, IsValidDayOfMonth(2025, 2, 28))
	assert.False(t, IsValidDayOfMonth(2025, 2, 29))
	assert.True(t, IsValidDayOfMonth(2024, 2, 29))
	assert.False(t, IsValidDayOfMonth(2025, 4, 31))
	assert.False(t, IsValidDayOfMonth(2025, 4, 0))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("09:30"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:3"))
	assert.False(t, IsValidTimeOfDay(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "is required"},
		{Field: "month", Message: "must be between 1 and 12"},
	}

	assert.Equal(t, "year: is required; month: must be between 1 and 12", errs.Error())
	assert.Equal(t, map[string]string{
		"year":  "is required",
		"month": "must be between 1 and 12",
	}, errs.ToMap())
}
