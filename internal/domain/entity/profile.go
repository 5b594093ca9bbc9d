package entity

import "time"

// UserProfile holds the single local profile and its budget targets.
type UserProfile struct {
	Name              string  `json:"name"`
	Currency          string  `json:"currency"`
	MonthlyBudget     float64 `json:"monthlyBudget"`
	DailyBudgetTarget float64 `json:"dailyBudgetTarget"`
}

// DefaultUserProfile is materialised the first time the profile is read.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		Name:              "User",
		Currency:          "$",
		MonthlyBudget:     0,
		DailyBudgetTarget: 0,
	}
}

// ProfilePatch lists the fields an update may change.
type ProfilePatch struct {
	Name              *string
	Currency          *string
	MonthlyBudget     *float64
	DailyBudgetTarget *float64
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *UserProfile) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.MonthlyBudget != nil {
		p.MonthlyBudget = *patch.MonthlyBudget
	}
	if patch.DailyBudgetTarget != nil {
		p.DailyBudgetTarget = *patch.DailyBudgetTarget
	}
}

// ChangesMonthlyBudget reports whether applying the patch to current sets a different
// monthly budget.
func (patch ProfilePatch) ChangesMonthlyBudget(current UserProfile) bool {
	return patch.MonthlyBudget != nil && *patch.MonthlyBudget != current.MonthlyBudget
}

// BudgetHistory records one monthly budget value that was set.
type BudgetHistory struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// NewBudgetHistory creates a BudgetHistory entry stamped with now.
func NewBudgetHistory(amount float64, now time.Time) BudgetHistory {
	return BudgetHistory{
		ID:     NewID(now),
		Amount: amount,
		Date:   Timestamp(now),
	}
}

// CurrencyOptions are the currency symbols offered to the user.
var CurrencyOptions = []string{"৳", "$", "€", "£", "¥", "₹", "₿"}
