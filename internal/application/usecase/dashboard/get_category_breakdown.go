// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// TopCategoryCount is the number of categories highlighted on the home screen.
const TopCategoryCount = 3

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryName     string          `json:"category_name"`
	CategoryColor    string          `json:"category_color"`
	CategoryIcon     string          `json:"category_icon"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryBreakdown groups the month's daily expenses by category, largest total first.
// Categories with equal totals keep the order in which they first appear.
func CategoryBreakdown(expenses []entity.Expense, now time.Time) []CategoryBreakdownItem {
	monthExpenses := MonthExpenses(expenses, now)
	total := SumExpenses(monthExpenses)

	// Group in first-appearance order
	index := make(map[string]int)
	categories := make([]CategoryBreakdownItem, 0)
	for _, e := range monthExpenses {
		i, ok := index[e.Category]
		if !ok {
			category := entity.LookupCategory(e.Category)
			i = len(categories)
			index[e.Category] = i
			categories = append(categories, CategoryBreakdownItem{
				CategoryName:  e.Category,
				CategoryColor: category.Color,
				CategoryIcon:  category.Icon,
				Amount:        decimal.Zero,
			})
		}
		categories[i].Amount = categories[i].Amount.Add(decimal.NewFromFloat(e.Amount))
		categories[i].TransactionCount++
	}

	for i := range categories {
		categories[i].Percentage = Percentage(categories[i].Amount, total)
	}

	slices.SortStableFunc(categories, func(a, b CategoryBreakdownItem) int {
		return b.Amount.Cmp(a.Amount)
	})
	return categories
}

// TopCategories returns at most TopCategoryCount leading entries of a sorted breakdown.
func TopCategories(breakdown []CategoryBreakdownItem) []CategoryBreakdownItem {
	if len(breakdown) > TopCategoryCount {
		return breakdown[:TopCategoryCount]
	}
	return breakdown
}
