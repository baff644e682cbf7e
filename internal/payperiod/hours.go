package payperiod

import (
	"time"

	payperioderrors "github.com/simeongugl4-design/workforce-hub-png/internal/payperiod/errors"

	"github.com/shopspring/decimal"
)

const clockLayout = "15:04"

var minutesPerHour = decimal.NewFromInt(60)

// ParseClock parses an "HH:MM" wall-clock value.
func ParseClock(v string) (time.Time, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return time.Time{}, payperioderrors.ErrInvalidClockFormat
	}
	return t, nil
}

// HoursWorked returns the elapsed time between two same-day clock values
// as fractional hours. A clock-out at or before clock-in is an error,
// never a zero-hour shift.
func HoursWorked(clockIn, clockOut string) (decimal.Decimal, error) {
	in, err := ParseClock(clockIn)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := ParseClock(clockOut)
	if err != nil {
		return decimal.Zero, err
	}

	minutes := out.Sub(in).Minutes()
	if minutes <= 0 {
		return decimal.Zero, payperioderrors.ErrInvalidInterval
	}

	return decimal.NewFromFloat(minutes).Div(minutesPerHour), nil
}
