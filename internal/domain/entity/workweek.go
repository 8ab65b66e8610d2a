// Package entity contains the core business objects of the project.
package entity

import "time"

// The pharmacy's pay week runs Tuesday through Monday, and couriers do not
// work Sundays, so the work-week day list has six entries.

// WeekStart returns the most recent Tuesday on or before date, at midnight
// in date's location. It is the key a CourierPayment row is stored under.
func WeekStart(date time.Time) time.Time {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	daysBack := (int(date.Weekday()) - int(time.Tuesday) + 7) % 7

	return date.AddDate(0, 0, -daysBack)
}

// WorkWeekDays lists the working days of the week starting at weekStart:
// Tuesday through Monday with Sunday excluded.
func WorkWeekDays(weekStart time.Time) []time.Time {
	weekStart = WeekStart(weekStart)

	days := make([]time.Time, 0, 6)
	for i := range 7 {
		day := weekStart.AddDate(0, 0, i)
		if day.Weekday() == time.Sunday {
			continue
		}
		days = append(days, day)
	}

	return days
}

// WeekKey formats a week-start date the way the dashboard keys the weekly
// payment map (ISO date).
func WeekKey(weekStart time.Time) string {
	return weekStart.Format(time.DateOnly)
}
