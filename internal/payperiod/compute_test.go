package payperiod_test

import (
	"testing"

	"github.com/simeongugl4-design/workforce-hub-png/internal/payperiod"
	payperioderrors "github.com/simeongugl4-design/workforce-hub-png/internal/payperiod/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHoursWorked(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     string
	}{
		{"full day", "08:00", "17:00", "9"},
		{"half hour granularity", "07:30", "16:30", "9"},
		{"fractional hours kept", "08:00", "15:45", "7.75"},
		{"short shift", "09:00", "09:30", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payperiod.HoursWorked(tt.clockIn, tt.clockOut)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestHoursWorked_InvalidInterval(t *testing.T) {
	_, err := payperiod.HoursWorked("17:00", "08:00")
	assert.ErrorIs(t, err, payperioderrors.ErrInvalidInterval)

	// Zero elapsed time is a data-entry mistake, not a zero-hour shift
	_, err = payperiod.HoursWorked("09:00", "09:00")
	assert.ErrorIs(t, err, payperioderrors.ErrInvalidInterval)
}

func TestHoursWorked_BadFormat(t *testing.T) {
	_, err := payperiod.HoursWorked("8am", "17:00")
	assert.ErrorIs(t, err, payperioderrors.ErrInvalidClockFormat)

	_, err = payperiod.HoursWorked("08:00", "25:99")
	assert.ErrorIs(t, err, payperioderrors.ErrInvalidClockFormat)
}

func TestComputePayslip(t *testing.T) {
	t.Run("zero hours zero pay", func(t *testing.T) {
		got, err := payperiod.ComputePayslip(decimal.Zero, dec("22.50"), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, got.Gross.IsZero())
		assert.True(t, got.Net.IsZero())
	})

	t.Run("exact decimal multiplication", func(t *testing.T) {
		got, err := payperiod.ComputePayslip(dec("37.5"), dec("15.00"), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, dec("562.50").Equal(got.Gross), "got %s", got.Gross)
		assert.True(t, dec("562.50").Equal(got.Net))
	})

	t.Run("fortnight with deductions", func(t *testing.T) {
		got, err := payperiod.ComputePayslip(dec("80"), dec("15"), dec("120"))
		require.NoError(t, err)
		assert.True(t, dec("1200.00").Equal(got.Gross))
		assert.True(t, dec("1080.00").Equal(got.Net))
	})

	t.Run("negative net surfaced, not clamped", func(t *testing.T) {
		got, err := payperiod.ComputePayslip(dec("10"), dec("5"), dec("100"))
		require.NoError(t, err)
		assert.True(t, dec("-50").Equal(got.Net))
	})

	t.Run("negative inputs rejected", func(t *testing.T) {
		_, err := payperiod.ComputePayslip(dec("-1"), dec("15"), decimal.Zero)
		assert.ErrorIs(t, err, payperioderrors.ErrInvalidAmount)

		_, err = payperiod.ComputePayslip(dec("10"), dec("-15"), decimal.Zero)
		assert.ErrorIs(t, err, payperioderrors.ErrInvalidAmount)

		_, err = payperiod.ComputePayslip(dec("10"), dec("15"), dec("-3"))
		assert.ErrorIs(t, err, payperioderrors.ErrInvalidAmount)
	})
}

func TestSumApprovedHours(t *testing.T) {
	entries := []payperiod.HourEntry{
		{Status: "approved", Hours: dec("8")},
		{Status: "pending", Hours: dec("8")},
		{Status: "approved", Hours: dec("7.5")},
		{Status: "flagged", Hours: dec("6")},
		{Status: "rejected", Hours: dec("4")},
	}

	total := payperiod.SumApprovedHours(entries)
	assert.True(t, dec("15.5").Equal(total), "got %s", total)

	assert.True(t, payperiod.SumApprovedHours(nil).IsZero())
}
