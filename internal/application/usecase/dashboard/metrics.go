// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the budget figures of the home screen.
type Summary struct {
	TodayTotal             decimal.Decimal `json:"today_total"`
	MonthTotal             decimal.Decimal `json:"month_total"`
	RemainingBudget        decimal.Decimal `json:"remaining_budget"`
	RemainingDailyBudget   decimal.Decimal `json:"remaining_daily_budget"`
	MonthFixedTotal        decimal.Decimal `json:"month_fixed_total"`
	TotalLoansOutstanding  decimal.Decimal `json:"total_loans_outstanding"`
	BudgetUsedPercent      float64         `json:"budget_used_percent"`
	DailyBudgetUsedPercent float64         `json:"daily_budget_used_percent"`
	TodayCount             int             `json:"today_count"`
	MonthCount             int             `json:"month_count"`
}

// DailyExpenses returns the expenses that count against the budget, in stored order.
func DailyExpenses(expenses []entity.Expense) []entity.Expense {
	daily := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.IsDaily() {
			daily = append(daily, e)
		}
	}
	return daily
}

// TodayExpenses returns the daily expenses dated on the calendar day of now.
func TodayExpenses(expenses []entity.Expense, now time.Time) []entity.Expense {
	return filterByPrefix(DailyExpenses(expenses), DayKey(now))
}

// MonthExpenses returns the daily expenses dated in the calendar month of now.
func MonthExpenses(expenses []entity.Expense, now time.Time) []entity.Expense {
	return filterByPrefix(DailyExpenses(expenses), MonthKey(now))
}

func filterByPrefix(expenses []entity.Expense, prefix string) []entity.Expense {
	matched := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if strings.HasPrefix(e.Date, prefix) {
			matched = append(matched, e)
		}
	}
	return matched
}

// SumExpenses returns the exact sum of the expense amounts.
func SumExpenses(expenses []entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

// ComputeSummary derives the budget figures for now from a snapshot.
func ComputeSummary(snapshot entity.Snapshot, now time.Time) Summary {
	todayExpenses := TodayExpenses(snapshot.Expenses, now)
	monthExpenses := MonthExpenses(snapshot.Expenses, now)

	todayTotal := SumExpenses(todayExpenses)
	monthTotal := SumExpenses(monthExpenses)
	monthlyBudget := decimal.NewFromFloat(snapshot.Profile.MonthlyBudget)
	dailyTarget := decimal.NewFromFloat(snapshot.Profile.DailyBudgetTarget)

	monthKey := MonthKey(now)
	monthFixedTotal := decimal.Zero
	for _, f := range snapshot.FixedExpenses {
		if strings.HasPrefix(f.Date, monthKey) {
			monthFixedTotal = monthFixedTotal.Add(decimal.NewFromFloat(f.Amount))
		}
	}

	return Summary{
		TodayTotal:             todayTotal,
		MonthTotal:             monthTotal,
		RemainingBudget:        monthlyBudget.Sub(monthTotal),
		RemainingDailyBudget:   dailyTarget.Sub(todayTotal),
		MonthFixedTotal:        monthFixedTotal,
		TotalLoansOutstanding:  OutstandingLoans(snapshot.Loans),
		BudgetUsedPercent:      ClampedPercentage(monthTotal, monthlyBudget),
		DailyBudgetUsedPercent: ClampedPercentage(todayTotal, dailyTarget),
		TodayCount:             len(todayExpenses),
		MonthCount:             len(monthExpenses),
	}
}

// OutstandingLoans sums the amounts of unpaid loans.
func OutstandingLoans(loans []entity.LoanEntry) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		if !l.IsPaid {
			total = total.Add(decimal.NewFromFloat(l.Amount))
		}
	}
	return total
}

// CountNoSpendDays counts the days from the first of the month through today that have no
// daily expense. Days after today are not counted.
func CountNoSpendDays(expenses []entity.Expense, now time.Time) int {
	spent := make(map[int]bool)
	for _, e := range MonthExpenses(expenses, now) {
		spent[DayOfMonth(e.Date)] = true
	}

	count := 0
	for d := 1; d <= now.UTC().Day(); d++ {
		if !spent[d] {
			count++
		}
	}
	return count
}

// Percentage returns part as a percentage of whole, rounded to two places. A zero whole
// yields 0.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	pct, _ := part.Mul(hundred).Div(whole).Round(2).Float64()
	return pct
}

// ClampedPercentage is Percentage capped at 100.
func ClampedPercentage(part, whole decimal.Decimal) float64 {
	return min(Percentage(part, whole), 100)
}

// GoalProgress is a savings goal with its completion percentage.
type GoalProgress struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Progress      float64 `json:"progress"`
}

// GoalsProgress returns the completion of every savings goal, capped at 100%.
func GoalsProgress(goals []entity.SavingsGoal) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, GoalProgress{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Progress:      ClampedPercentage(decimal.NewFromFloat(g.CurrentAmount), decimal.NewFromFloat(g.TargetAmount)),
		})
	}
	return progress
}
