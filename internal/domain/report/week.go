package report

import (
	"math"
	"time"
)

// WeekNumber returns the week number (1-53) for a date. The date is
// shifted to the nearest Thursday of its week (Sunday counting as day 7)
// before the week of the year is derived, so a week belongs to the year
// holding most of its days.
func WeekNumber(date time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	dayOfWeek := int(d.Weekday())
	if dayOfWeek == 0 {
		dayOfWeek = 7
	}
	thursday := d.AddDate(0, 0, 4-dayOfWeek)

	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, thursday.Location())
	days := thursday.Sub(yearStart).Hours() / 24

	return int(math.Ceil((days + 1) / 7))
}

// WeekBounds returns the start and end timestamps for a week of a year.
// The first week starts on the Monday of the week holding January 1; the
// end is clamped to the last instant of its day.
func WeekBounds(week, year int) (start, end time.Time) {
	januaryFirst := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	dayOfWeek := int(januaryFirst.Weekday())
	if dayOfWeek == 0 {
		dayOfWeek = 7
	}

	firstWeekStart := januaryFirst.AddDate(0, 0, 1-dayOfWeek)

	start = firstWeekStart.AddDate(0, 0, (week-1)*7)
	end = start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location())

	return start, end
}

// MonthBounds returns the first and last instants of a calendar month.
func MonthBounds(month time.Month, year int) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
