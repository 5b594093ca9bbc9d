// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// TimestampLayout is the layout of every stored timestamp (UTC, millisecond precision).
	TimestampLayout = "2006-01-02T15:04:05.000Z"
	// DateLayout is the calendar-day prefix of a stored timestamp.
	DateLayout = "2006-01-02"
	// MonthLayout is the year-month prefix of a stored timestamp.
	MonthLayout = "2006-01"
)

// NewID generates a record identifier: creation time in milliseconds followed by a
// nine character random suffix. Uniqueness is probabilistic.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strconv.FormatInt(now.UnixMilli(), 10) + suffix[:9]
}

// Timestamp renders t in TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DayOf returns the calendar-day prefix (YYYY-MM-DD) of a stored date string, or "" when the
// string is too short to carry one.
func DayOf(date string) string {
	if len(date) < len(DateLayout) {
		return ""
	}
	return date[:len(DateLayout)]
}

// IsValidDate reports whether the stored date string starts with a YYYY-MM-DD day.
func IsValidDate(date string) bool {
	day := DayOf(date)
	if day == "" {
		return false
	}
	_, err := time.Parse(DateLayout, day)
	return err == nil
}
