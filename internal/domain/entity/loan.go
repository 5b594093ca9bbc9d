package entity

import "time"

// LoanEntry tracks money borrowed or lent until it is paid back.
type LoanEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	IsPaid    bool    `json:"isPaid"`
	PaidDate  *string `json:"paidDate,omitempty"`
}

// LoanDraft holds the caller-supplied fields of a new loan. A new loan always starts unpaid.
type LoanDraft struct {
	Name   string
	Amount float64
	Notes  string
	Date   string
}

// NewLoanEntry creates an unpaid LoanEntry from a draft.
func NewLoanEntry(draft LoanDraft, now time.Time) *LoanEntry {
	return &LoanEntry{
		ID:        NewID(now),
		Name:      draft.Name,
		Amount:    draft.Amount,
		Notes:     draft.Notes,
		Date:      draft.Date,
		CreatedAt: Timestamp(now),
		IsPaid:    false,
	}
}

// LoanPatch lists the fields an update may change. The repository applies it as a plain
// merge; pairing IsPaid with PaidDate is up to the caller.
type LoanPatch struct {
	Name     *string
	Amount   *float64
	Notes    *string
	Date     *string
	IsPaid   *bool
	PaidDate *string
	// ClearPaidDate removes PaidDate. It wins over PaidDate.
	ClearPaidDate bool
}

// Apply merges the patch into l.
func (p LoanPatch) Apply(l *LoanEntry) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Amount != nil {
		l.Amount = *p.Amount
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.Date != nil {
		l.Date = *p.Date
	}
	if p.IsPaid != nil {
		l.IsPaid = *p.IsPaid
	}
	if p.PaidDate != nil {
		paid := *p.PaidDate
		l.PaidDate = &paid
	}
	if p.ClearPaidDate {
		l.PaidDate = nil
	}
}
