// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// minIntensity is the lowest intensity of a day with any spending.
var minIntensity = decimal.NewFromFloat(0.15)

// CalendarDay represents a single day of the spending calendar.
type CalendarDay struct {
	Day       int             `json:"day"`
	Amount    decimal.Decimal `json:"amount"`
	Intensity float64         `json:"intensity"`
	IsToday   bool            `json:"is_today"`
}

// Calendar represents the per-day spending of one month.
type Calendar struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Label        string          `json:"label"`
	DaysInMonth  int             `json:"days_in_month"`
	FirstWeekday int             `json:"first_weekday"` // 0 is Sunday
	MaxDaily     decimal.Decimal `json:"max_daily"`
	Total        decimal.Decimal `json:"total"`
	Days         []CalendarDay   `json:"days"`
}

// CalendarMonth sums every expense by day of the given month. The result does not depend
// on now except for the IsToday flag.
func CalendarMonth(expenses []entity.Expense, year int, month time.Month, now time.Time) Calendar {
	prefix := CalendarMonthKey(year, month) + "-"
	daysInMonth := DaysInMonth(year, month)

	totals := make([]decimal.Decimal, daysInMonth+1)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, e := range expenses {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		if d := DayOfMonth(e.Date); d >= 1 && d <= daysInMonth {
			totals[d] = totals[d].Add(decimal.NewFromFloat(e.Amount))
		}
	}

	// The busiest day sets the scale; it is never below 1
	maxDaily := decimal.NewFromInt(1)
	total := decimal.Zero
	for _, amount := range totals[1:] {
		maxDaily = decimal.Max(maxDaily, amount)
		total = total.Add(amount)
	}

	today := 0
	if nowUTC := now.UTC(); nowUTC.Year() == year && nowUTC.Month() == month {
		today = nowUTC.Day()
	}

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := CalendarDay{Day: d, Amount: totals[d], IsToday: d == today}
		if totals[d].IsPositive() {
			day.Intensity, _ = decimal.Max(minIntensity, totals[d].Div(maxDaily)).Round(2).Float64()
		}
		days = append(days, day)
	}

	return Calendar{
		Year:         year,
		Month:        int(month),
		Label:        GenerateMonthLabel(year, month),
		DaysInMonth:  daysInMonth,
		FirstWeekday: int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()),
		MaxDaily:     maxDaily,
		Total:        total,
		Days:         days,
	}
}

// GetCalendarInput represents the input for getting the spending calendar.
type GetCalendarInput struct {
	Year  int // Optional together with Month, defaults to the current month
	Month int
}

// GetCalendarOutput represents the output of getting the spending calendar.
type GetCalendarOutput struct {
	Calendar Calendar
}

// GetCalendarUseCase handles building the spending calendar of a month.
type GetCalendarUseCase struct {
	snapshots SnapshotProvider
	clock     adapter.Clock
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(snapshots SnapshotProvider, clock adapter.Clock) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		snapshots: snapshots,
		clock:     clock,
	}
}

// Execute builds the calendar for the requested month.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	now := uc.clock.Now()

	// Default to the current month
	if input.Year == 0 && input.Month == 0 {
		input.Year = now.UTC().Year()
		input.Month = int(now.UTC().Month())
	}

	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	snapshot, err := uc.snapshots.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &GetCalendarOutput{
		Calendar: CalendarMonth(snapshot.Expenses, input.Year, time.Month(input.Month), now),
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetCalendarUseCase) validateInput(input GetCalendarInput) error {
	if input.Year < 1970 || input.Year > 9999 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidCalendarYear,
			"year must be between 1970 and 9999",
			domainerror.ErrInvalidCalendarYear,
		)
	}

	if input.Month < 1 || input.Month > 12 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidCalendarMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidCalendarMonth,
		)
	}

	return nil
}
