// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// DailySpending represents a single day of the weekly chart.
type DailySpending struct {
	Day    string          `json:"day"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// WeeklySpending sums every expense, whatever its type, for each day of the Monday-based
// week containing now.
func WeeklySpending(expenses []entity.Expense, now time.Time) []DailySpending {
	monday := GetWeekStartDate(now)

	week := make([]DailySpending, 0, len(WeekdayLabels))
	for i, label := range WeekdayLabels {
		day := DayKey(monday.AddDate(0, 0, i))
		amount := decimal.Zero
		for _, e := range expenses {
			if strings.HasPrefix(e.Date, day) {
				amount = amount.Add(decimal.NewFromFloat(e.Amount))
			}
		}
		week = append(week, DailySpending{
			Day:    label,
			Date:   day,
			Amount: amount,
		})
	}
	return week
}
