// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// WeekdayLabels are the labels of the weekly chart, starting on Monday.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayKey returns the YYYY-MM-DD prefix stored dates are matched against. Matching is on
// the UTC calendar day, so entries made near midnight in other timezones can land on the
// neighbouring day.
func DayKey(t time.Time) string {
	return t.UTC().Format(entity.DateLayout)
}

// MonthKey returns the YYYY-MM prefix stored dates are matched against.
func MonthKey(t time.Time) string {
	return t.UTC().Format(entity.MonthLayout)
}

// CalendarMonthKey returns the YYYY-MM prefix of an arbitrary year and month.
func CalendarMonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DayOfMonth returns the day-of-month component of a stored date string, or 0 when it
// carries none.
func DayOfMonth(date string) int {
	day := entity.DayOf(date)
	if day == "" {
		return 0
	}
	d, err := strconv.Atoi(day[8:])
	if err != nil {
		return 0
	}
	return d
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GetWeekStartDate returns the Monday of the week containing the given date.
func GetWeekStartDate(date time.Time) time.Time {
	date = date.UTC()
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, time.UTC)
}

// GenerateMonthLabel generates a human-readable label for a month (e.g., "March 2024").
func GenerateMonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}
