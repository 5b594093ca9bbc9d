package entity

import "time"

// ExpenseType classifies an expense for budget purposes.
type ExpenseType string

const (
	ExpenseTypeDaily ExpenseType = "daily"
	ExpenseTypeFixed ExpenseType = "fixed"
	ExpenseTypeLoan  ExpenseType = "loan"
)

// IsValid reports whether t is one of the known expense types.
func (t ExpenseType) IsValid() bool {
	return t == ExpenseTypeDaily || t == ExpenseTypeFixed || t == ExpenseTypeLoan
}

// RecurringType is the repetition cadence of a recurring expense.
type RecurringType string

const (
	RecurringDaily   RecurringType = "daily"
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
)

// IsValid reports whether t is one of the known cadences.
func (t RecurringType) IsValid() bool {
	return t == RecurringDaily || t == RecurringWeekly || t == RecurringMonthly
}

// Expense is a single spending record.
type Expense struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Amount        float64        `json:"amount"`
	Category      string         `json:"category"`
	Tags          []string       `json:"tags"`
	Notes         string         `json:"notes"`
	Date          string         `json:"date"`
	CreatedAt     string         `json:"createdAt"`
	IsRecurring   bool           `json:"isRecurring"`
	RecurringType *RecurringType `json:"recurringType,omitempty"`
	// ExpenseType is empty on records written before the field existed.
	ExpenseType ExpenseType `json:"expenseType,omitempty"`
}

// Type returns the expense type, treating a missing value as daily.
func (e Expense) Type() ExpenseType {
	if e.ExpenseType == "" {
		return ExpenseTypeDaily
	}
	return e.ExpenseType
}

// IsDaily reports whether the expense counts against the daily/monthly budget.
func (e Expense) IsDaily() bool {
	return e.Type() == ExpenseTypeDaily
}

// ExpenseDraft holds the caller-supplied fields of a new expense.
type ExpenseDraft struct {
	Name          string
	Amount        float64
	Category      string
	Tags          []string
	Notes         string
	Date          string
	IsRecurring   bool
	RecurringType *RecurringType
	ExpenseType   ExpenseType
}

// NewExpense creates an Expense from a draft, assigning id and createdAt.
func NewExpense(draft ExpenseDraft, now time.Time) *Expense {
	expenseType := draft.ExpenseType
	if expenseType == "" {
		expenseType = ExpenseTypeDaily
	}

	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Expense{
		ID:            NewID(now),
		Name:          draft.Name,
		Amount:        draft.Amount,
		Category:      draft.Category,
		Tags:          tags,
		Notes:         draft.Notes,
		Date:          draft.Date,
		CreatedAt:     Timestamp(now),
		IsRecurring:   draft.IsRecurring,
		RecurringType: draft.RecurringType,
		ExpenseType:   expenseType,
	}
}

// ExpensePatch lists the fields an update may change. Nil fields are left untouched.
type ExpensePatch struct {
	Name          *string
	Amount        *float64
	Category      *string
	Tags          *[]string
	Notes         *string
	Date          *string
	IsRecurring   *bool
	RecurringType *RecurringType
	ExpenseType   *ExpenseType
}

// Apply merges the patch into e.
func (p ExpensePatch) Apply(e *Expense) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Tags != nil {
		e.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.IsRecurring != nil {
		e.IsRecurring = *p.IsRecurring
	}
	if p.RecurringType != nil {
		rt := *p.RecurringType
		e.RecurringType = &rt
	}
	if p.ExpenseType != nil {
		e.ExpenseType = *p.ExpenseType
	}
}
