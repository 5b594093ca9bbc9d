// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-daddy/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the response for the dashboard summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the data section of the summary response.
type SummaryData struct {
	Date                   string                  `json:"date"`
	Currency               string                  `json:"currency"`
	MonthlyBudget          float64                 `json:"monthly_budget"`
	DailyBudgetTarget      float64                 `json:"daily_budget_target"`
	TodayTotal             float64                 `json:"today_total"`
	MonthTotal             float64                 `json:"month_total"`
	RemainingBudget        float64                 `json:"remaining_budget"`
	RemainingDailyBudget   float64                 `json:"remaining_daily_budget"`
	MonthFixedTotal        float64                 `json:"month_fixed_total"`
	TotalLoansOutstanding  float64                 `json:"total_loans_outstanding"`
	BudgetUsedPercent      float64                 `json:"budget_used_percent"`
	DailyBudgetUsedPercent float64                 `json:"daily_budget_used_percent"`
	OverBudget             bool                    `json:"over_budget"`
	NoSpendDays            int                     `json:"no_spend_days"`
	Categories             []CategoryShareResponse `json:"categories"`
	TopCategories          []CategoryShareResponse `json:"top_categories"`
	Weekly                 []DailySpendingResponse `json:"weekly"`
	RecentExpenses         []ExpenseResponse       `json:"recent_expenses"`
	Goals                  []GoalProgressResponse  `json:"goals"`
}

// CategoryShareResponse represents one category of the monthly breakdown.
type CategoryShareResponse struct {
	Name             string  `json:"name"`
	Color            string  `json:"color"`
	Icon             string  `json:"icon"`
	Amount           float64 `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// DailySpendingResponse represents one day of the weekly chart.
type DailySpendingResponse struct {
	Day    string  `json:"day"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// GoalProgressResponse represents the progress of a savings goal.
type GoalProgressResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Progress      float64 `json:"progress"`
}

// CalendarResponse represents the response for the spending calendar API.
type CalendarResponse struct {
	Data CalendarData `json:"data"`
}

// CalendarData represents the data section of the calendar response.
type CalendarData struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Label        string                `json:"label"`
	DaysInMonth  int                   `json:"days_in_month"`
	FirstWeekday int                   `json:"first_weekday"`
	MaxDaily     float64               `json:"max_daily"`
	Total        float64               `json:"total"`
	Days         []CalendarDayResponse `json:"days"`
}

// CalendarDayResponse represents one day of the spending calendar.
type CalendarDayResponse struct {
	Day       int     `json:"day"`
	Amount    float64 `json:"amount"`
	Intensity float64 `json:"intensity"`
	IsToday   bool    `json:"is_today"`
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// ToSummaryResponse converts a GetSummaryOutput to SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	s := output.Summary

	weekly := make([]DailySpendingResponse, len(output.Weekly))
	for i, day := range output.Weekly {
		weekly[i] = DailySpendingResponse{
			Day:    day.Day,
			Date:   day.Date,
			Amount: toFloat(day.Amount),
		}
	}

	recent := make([]ExpenseResponse, len(output.RecentExpenses))
	for i := range output.RecentExpenses {
		recent[i] = ToExpenseResponse(&output.RecentExpenses[i])
	}

	goals := make([]GoalProgressResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = GoalProgressResponse{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Progress:      g.Progress,
		}
	}

	return SummaryResponse{
		Data: SummaryData{
			Date:                   output.Date,
			Currency:               output.Currency,
			MonthlyBudget:          output.Profile.MonthlyBudget,
			DailyBudgetTarget:      output.Profile.DailyBudgetTarget,
			TodayTotal:             toFloat(s.TodayTotal),
			MonthTotal:             toFloat(s.MonthTotal),
			RemainingBudget:        toFloat(s.RemainingBudget),
			RemainingDailyBudget:   toFloat(s.RemainingDailyBudget),
			MonthFixedTotal:        toFloat(s.MonthFixedTotal),
			TotalLoansOutstanding:  toFloat(s.TotalLoansOutstanding),
			BudgetUsedPercent:      s.BudgetUsedPercent,
			DailyBudgetUsedPercent: s.DailyBudgetUsedPercent,
			OverBudget:             s.RemainingBudget.IsNegative(),
			NoSpendDays:            output.NoSpendDays,
			Categories:             toCategoryShares(output.Categories),
			TopCategories:          toCategoryShares(output.TopCategories),
			Weekly:                 weekly,
			RecentExpenses:         recent,
			Goals:                  goals,
		},
	}
}

func toCategoryShares(items []dashboard.CategoryBreakdownItem) []CategoryShareResponse {
	shares := make([]CategoryShareResponse, len(items))
	for i, item := range items {
		shares[i] = CategoryShareResponse{
			Name:             item.CategoryName,
			Color:            item.CategoryColor,
			Icon:             item.CategoryIcon,
			Amount:           toFloat(item.Amount),
			Percentage:       item.Percentage,
			TransactionCount: item.TransactionCount,
		}
	}
	return shares
}

// ToCalendarResponse converts a Calendar to CalendarResponse DTO.
func ToCalendarResponse(c dashboard.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, len(c.Days))
	for i, d := range c.Days {
		days[i] = CalendarDayResponse{
			Day:       d.Day,
			Amount:    toFloat(d.Amount),
			Intensity: d.Intensity,
			IsToday:   d.IsToday,
		}
	}

	return CalendarResponse{
		Data: CalendarData{
			Year:         c.Year,
			Month:        c.Month,
			Label:        c.Label,
			DaysInMonth:  c.DaysInMonth,
			FirstWeekday: c.FirstWeekday,
			MaxDaily:     toFloat(c.MaxDaily),
			Total:        toFloat(c.Total),
			Days:         days,
		},
	}
}
