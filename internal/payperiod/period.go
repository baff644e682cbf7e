package payperiod

import "time"

// Period is a half-month billing window: the 1st through the 15th, or
// the 16th through the last day of the month. Boundaries are always
// computed from the calendar, never stored, so they cannot drift.
type Period struct {
	Start time.Time
	End   time.Time
}

// For maps any calendar date onto its enclosing fortnight. Total: every
// date lands in exactly one period, the two periods of a month never
// overlap, and together they cover the month whatever its length.
func For(date time.Time) Period {
	year, month, day := date.Date()
	loc := date.Location()

	if day <= 15 {
		return Period{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, loc),
			End:   time.Date(year, month, 15, 0, 0, 0, 0, loc),
		}
	}

	// Day 0 of the next month normalizes to the last day of this one,
	// which handles 28/29/30/31-day months and leap years.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return Period{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, loc),
		End:   lastDay,
	}
}

// Contains reports whether d falls inside the period (date precision).
func (p Period) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return !day.Before(p.Start) && !day.After(p.End)
}

// Key renders a stable identifier for the period, e.g. "2025-02-16_2025-02-28".
func (p Period) Key() string {
	return p.Start.Format("2006-01-02") + "_" + p.End.Format("2006-01-02")
}
