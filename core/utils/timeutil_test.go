package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1},
		{7, 1},
		{8, 2},
		{14, 2},
		{15, 3},
		{21, 3},
		{22, 4},
		{28, 4},
		{29, 5},
		{31, 5},
	}

	for _, tt := range tests {
		d := time.Date(2026, time.March, tt.day, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, WeekOfMonth(d), "day %d", tt.day)
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		d := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, QuarterOf(d), "month %s", tt.month)
	}
}

func TestQuarterWindow(t *testing.T) {
	tests := []struct {
		quarter    int
		wantStart  time.Month
		wantEndIn  time.Month
		wantEndYr  int
	}{
		{1, time.January, time.April, 2026},
		{2, time.April, time.July, 2026},
		{3, time.July, time.October, 2026},
		{4, time.October, time.January, 2027},
	}

	for _, tt := range tests {
		start, end, err := QuarterWindow(2026, tt.quarter, time.UTC)
		require.NoError(t, err, "quarter %d", tt.quarter)
		assert.Equal(t, time.Date(2026, tt.wantStart, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(tt.wantEndYr, tt.wantEndIn, 1, 0, 0, 0, 0, time.UTC), end)
	}
}

func TestQuarterWindowRejectsOutOfRange(t *testing.T) {
	for _, q := range []int{0, 5, -1} {
		_, _, err := QuarterWindow(2026, q, time.UTC)
		assert.Error(t, err, "quarter %d", q)
	}
}

func TestQuarterWindowsAreContiguous(t *testing.T) {
	// The end of each quarter must equal the start of the next: no gap and
	// no overlap anywhere in the year.
	for q := 1; q < 4; q++ {
		_, end, err := QuarterWindow(2026, q, time.UTC)
		require.NoError(t, err)
		next, _, err := QuarterWindow(2026, q+1, time.UTC)
		require.NoError(t, err)
		assert.True(t, end.Equal(next), "quarter %d end != quarter %d start", q, q+1)
	}
}

func TestRequiredUnits(t *testing.T) {
	tests := []struct {
		duration int
		unit     int
		want     int
	}{
		{60, 30, 2},
		{90, 30, 3},
		{45, 30, 2},
		{30, 30, 1},
		{1, 30, 1},
		{0, 30, 0},
		{60, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RequiredUnits(tt.duration, tt.unit), "%d/%d", tt.duration, tt.unit)
	}
}
