// Package compensation computes monthly pay components from a base
// amount, a payment frequency, and an attendance breakdown. It is pure:
// no I/O, no clock, no mutation of inputs.
package compensation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate multipliers applied to the derived daily and hourly rates.
var (
	WeekendRateMultiplier  = decimal.NewFromInt(2)
	HolidayRateMultiplier  = decimal.NewFromInt(2)
	OvertimeRateMultiplier = decimal.RequireFromString("1.5")

	// StandardWorkHours converts between daily and hourly rates.
	StandardWorkHours = decimal.NewFromInt(8)
)

const moneyPlaces = 2

var ErrInvalidInput = errors.New("invalid compensation input")

// Frequency is how a job's base amount is quoted. Anything other than
// monthly is treated as an hourly quote.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyWeekly   Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBiWeekly, FrequencyWeekly:
		return true
	}
	return false
}

// Hourly reports whether the base amount is an hourly rate.
func (f Frequency) Hourly() bool {
	return f != FrequencyMonthly
}

// Breakdown is the attendance input for one job and period.
type Breakdown struct {
	RegularDays   int
	WeekendDays   int
	HolidayDays   int
	LeavesTaken   int
	OvertimeHours decimal.Decimal
}

func (b Breakdown) validate() error {
	if b.RegularDays < 0 {
		return fmt.Errorf("%w: regular days must be non-negative", ErrInvalidInput)
	}
	if b.WeekendDays < 0 {
		return fmt.Errorf("%w: weekend days must be non-negative", ErrInvalidInput)
	}
	if b.HolidayDays < 0 {
		return fmt.Errorf("%w: holiday days must be non-negative", ErrInvalidInput)
	}
	if b.LeavesTaken < 0 {
		return fmt.Errorf("%w: leaves taken must be non-negative", ErrInvalidInput)
	}
	if b.OvertimeHours.IsNegative() {
		return fmt.Errorf("%w: overtime hours must be non-negative", ErrInvalidInput)
	}
	return nil
}

// Result holds the pay components. Total is the exact sum of the other
// four after each is rounded to two decimal places.
type Result struct {
	Regular  decimal.Decimal `json:"regular"`
	Weekend  decimal.Decimal `json:"weekend"`
	Holiday  decimal.Decimal `json:"holiday"`
	Overtime decimal.Decimal `json:"overtime"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives the pay components for one period.
//
// The daily rate is baseAmount/workingDays for monthly quotes and
// baseAmount*8 for hourly quotes. Weekend and holiday days pay double
// the daily rate. Overtime pays 1.5x the hourly rate, where the hourly
// rate is the quote itself for hourly jobs and dailyRate/8 otherwise.
// workingDays is required even for hourly quotes because the weekend
// and holiday multipliers scale the daily rate.
func Compute(baseAmount decimal.Decimal, freq Frequency, att Breakdown, workingDays int) (Result, error) {
	if baseAmount.IsNegative() {
		return Result{}, fmt.Errorf("%w: base amount must be non-negative", ErrInvalidInput)
	}
	if !freq.Valid() {
		return Result{}, fmt.Errorf("%w: unknown payment frequency %q", ErrInvalidInput, freq)
	}
	if workingDays <= 0 {
		return Result{}, fmt.Errorf("%w: working days must be positive", ErrInvalidInput)
	}
	if err := att.validate(); err != nil {
		return Result{}, err
	}

	var baseDaily decimal.Decimal
	if freq.Hourly() {
		baseDaily = baseAmount.Mul(StandardWorkHours)
	} else {
		baseDaily = baseAmount.DivRound(decimal.NewFromInt(int64(workingDays)), moneyPlaces+2)
	}

	regular := baseDaily.Mul(decimal.NewFromInt(int64(att.RegularDays))).Round(moneyPlaces)
	weekend := baseDaily.Mul(decimal.NewFromInt(int64(att.WeekendDays))).Mul(WeekendRateMultiplier).Round(moneyPlaces)
	holiday := baseDaily.Mul(decimal.NewFromInt(int64(att.HolidayDays))).Mul(HolidayRateMultiplier).Round(moneyPlaces)

	hourlyRate := baseAmount
	if !freq.Hourly() {
		hourlyRate = baseDaily.DivRound(StandardWorkHours, moneyPlaces+2)
	}
	overtime := hourlyRate.Mul(att.OvertimeHours).Mul(OvertimeRateMultiplier).Round(moneyPlaces)

	total := regular.Add(weekend).Add(holiday).Add(overtime)

	return Result{
		Regular:  regular,
		Weekend:  weekend,
		Holiday:  holiday,
		Overtime: overtime,
		Total:    total,
	}, nil
}
