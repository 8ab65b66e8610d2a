package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart_TuesdayBased(t *testing.T) {
	// 2026-08-25 is a Tuesday.
	tuesday := date(2026, time.August, 25)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "tuesday maps to itself", in: tuesday, want: tuesday},
		{name: "wednesday maps back one day", in: date(2026, time.August, 26), want: tuesday},
		{name: "sunday maps back to tuesday", in: date(2026, time.August, 30), want: tuesday},
		{name: "monday maps back six days", in: date(2026, time.August, 31), want: tuesday},
		{name: "next tuesday starts a new week", in: date(2026, time.September, 1), want: date(2026, time.September, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestWeekStart_TruncatesTimeOfDay(t *testing.T) {
	in := time.Date(2026, time.August, 27, 15, 42, 1, 0, time.UTC)
	assert.Equal(t, date(2026, time.August, 25), WeekStart(in))
}

func TestWorkWeekDays_ExcludesSunday(t *testing.T) {
	days := WorkWeekDays(date(2026, time.August, 25))
	require.Len(t, days, 6)

	for _, day := range days {
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}

	assert.Equal(t, date(2026, time.August, 25), days[0])
	assert.Equal(t, date(2026, time.August, 31), days[5]) // the Monday closing the week
}

func TestWeekKey(t *testing.T) {
	assert.Equal(t, "2026-08-25", WeekKey(date(2026, time.August, 25)))
}
