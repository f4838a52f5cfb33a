package utils

import (
	"fmt"
	"time"
)

// WeekOfMonth returns which week of the month t falls in, counted in plain
// seven-day blocks from the 1st: days 1-7 are week 1, days 8-14 week 2, and
// so on. Quota buckets are keyed by (year, month, week-of-month) using this
// numbering.
func WeekOfMonth(t time.Time) int {
	return ((t.Day() - 1) / 7) + 1
}

// QuarterOf returns the calendar quarter (1-4) containing t
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// QuarterWindow returns the [start, end) window of one calendar quarter.
// One explicit result per quarter; an out-of-range quarter is an error, never
// a silent fallthrough into the next quarter's window.
func QuarterWindow(year, quarter int, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var startMonth time.Month
	switch quarter {
	case 1:
		startMonth = time.January
	case 2:
		startMonth = time.April
	case 3:
		startMonth = time.July
	case 4:
		startMonth = time.October
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("quarter must be 1-4, got %d", quarter)
	}
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 3, 0)
	return start, end, nil
}

// RequiredUnits returns how many timeslot units of unitMinutes are needed to
// back an event of durationMinutes (rounded up).
func RequiredUnits(durationMinutes, unitMinutes int) int {
	if unitMinutes <= 0 {
		return 0
	}
	return (durationMinutes + unitMinutes - 1) / unitMinutes
}
