package payperiod

import (
	payperioderrors "github.com/simeongugl4-design/workforce-hub-png/internal/payperiod/errors"

	"github.com/shopspring/decimal"
)

// Computation is the monetary result of one payslip derivation.
type Computation struct {
	Gross decimal.Decimal
	Net   decimal.Decimal
}

// ComputePayslip derives gross and net pay from aggregated approved
// hours, an hourly rate and a flat deduction amount. Negative inputs
// are rejected outright. Net is NOT clamped at zero when deductions
// exceed gross; the caller sees the negative value.
func ComputePayslip(totalHours, hourlyRate, deductions decimal.Decimal) (Computation, error) {
	if totalHours.IsNegative() || hourlyRate.IsNegative() || deductions.IsNegative() {
		return Computation{}, payperioderrors.ErrInvalidAmount
	}

	gross := totalHours.Mul(hourlyRate)
	return Computation{
		Gross: gross,
		Net:   gross.Sub(deductions),
	}, nil
}

// StatusApproved is the only timesheet status that feeds payroll.
const StatusApproved = "approved"

// HourEntry is the slice of a timesheet record the aggregation needs.
type HourEntry struct {
	Status string
	Hours  decimal.Decimal
}

// SumApprovedHours totals the approved entries of one pay period.
// Callers are expected to pre-filter to approved records; the status
// check here is the boundary guard so a caller handing over the full
// set cannot silently inflate payroll with pending or flagged hours.
func SumApprovedHours(entries []HourEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Status != StatusApproved {
			continue
		}
		total = total.Add(e.Hours)
	}
	return total
}
