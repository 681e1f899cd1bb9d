package util

import "time"

// DateLayout is the civil-date format used throughout the ledger.
const DateLayout = "2006-01-02"

// MonthLayout is the month-prefix format (e.g. "2025-10").
const MonthLayout = "2006-01"

// ParseDate parses a YYYY-MM-DD civil date in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysUntil returns the whole-day difference between the target date and
// now, both at local midnight. Negative means overdue, zero due today.
// A malformed date yields 0 so display widgets never fail.
func DaysUntil(dateStr string, now time.Time) int {
	target, err := ParseDate(dateStr)
	if err != nil {
		return 0
	}
	// Re-anchor both midnights in UTC so DST transitions (23h/25h local
	// days) never skew the civil-day count.
	a := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

// MonthPrefix returns the YYYY-MM prefix for a time.
func MonthPrefix(t time.Time) string {
	return t.Format(MonthLayout)
}

// ClampedDate returns the date for a target day in a given month, pulling
// the day back for months with fewer days (day 31 in February becomes
// Feb 28/29).
func ClampedDate(year int, month time.Month, targetDay int) time.Time {
	// Last day of month via day 0 of the next month
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	actualDay := targetDay
	if actualDay > lastDay {
		actualDay = lastDay
	}

	return time.Date(year, month, actualDay, 0, 0, 0, 0, time.Local)
}

// AddMonthsClamped advances a civil date by n calendar months keeping the
// day of month, clamped to the target month's length.
func AddMonthsClamped(dateStr string, n int) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	// Anchor to the first of the month so month arithmetic never
	// overflows into the following month before clamping.
	anchor := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, n, 0)
	return ClampedDate(anchor.Year(), anchor.Month(), d.Day()).Format(DateLayout), nil
}

// AddYearsClamped advances a civil date by n years, clamping Feb 29 to
// Feb 28 on non-leap years.
func AddYearsClamped(dateStr string, n int) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ClampedDate(d.Year()+n, d.Month(), d.Day()).Format(DateLayout), nil
}

// TrailingMonths returns the first-of-month times for the trailing n
// calendar months including the month of now, ordered oldest to newest.
func TrailingMonths(now time.Time, n int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	months := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, first.AddDate(0, -i, 0))
	}
	return months
}
