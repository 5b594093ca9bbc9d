package entity

import "time"

// FixedExpense is a bill-like monthly expense tracked outside the daily budget.
type FixedExpense struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Notes     string  `json:"notes"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

// FixedExpenseDraft holds the caller-supplied fields of a new fixed expense.
type FixedExpenseDraft struct {
	Name     string
	Amount   float64
	Category string
	Notes    string
	Date     string
}

// NewFixedExpense creates a FixedExpense from a draft.
func NewFixedExpense(draft FixedExpenseDraft, now time.Time) *FixedExpense {
	return &FixedExpense{
		ID:        NewID(now),
		Name:      draft.Name,
		Amount:    draft.Amount,
		Category:  draft.Category,
		Notes:     draft.Notes,
		Date:      draft.Date,
		CreatedAt: Timestamp(now),
	}
}

// FixedExpensePatch lists the fields an update may change.
type FixedExpensePatch struct {
	Name     *string
	Amount   *float64
	Category *string
	Notes    *string
	Date     *string
}

// Apply merges the patch into f.
func (p FixedExpensePatch) Apply(f *FixedExpense) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
}
