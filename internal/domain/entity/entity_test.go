package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestNewID(t *testing.T) {
	id := NewID(fixedNow)

	prefix := "1710496800000"
	if !strings.HasPrefix(id, prefix) {
		t.Errorf("NewID() = %q, want prefix %q", id, prefix)
	}
	if len(id) != len(prefix)+9 {
		t.Errorf("len(NewID()) = %d, want %d", len(id), len(prefix)+9)
	}
	if other := NewID(fixedNow); other == id {
		t.Errorf("NewID() returned the same id twice: %q", id)
	}
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "full timestamp", date: "2024-03-15T10:00:00Z", want: "2024-03-15"},
		{name: "date only", date: "2024-03-15", want: "2024-03-15"},
		{name: "too short", date: "2024-03", want: ""},
		{name: "empty", date: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOf(tt.date); got != tt.want {
				t.Errorf("DayOf(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestNewExpenseBackfillsType(t *testing.T) {
	e := NewExpense(ExpenseDraft{Name: "Coffee", Amount: 4.5, Category: "Food", Date: "2024-03-15T10:00:00Z"}, fixedNow)

	if e.ExpenseType != ExpenseTypeDaily {
		t.Errorf("ExpenseType = %q, want daily", e.ExpenseType)
	}
	if e.Tags == nil {
		t.Error("Tags should be an empty slice, got nil")
	}
	if e.CreatedAt != "2024-03-15T10:00:00.000Z" {
		t.Errorf("CreatedAt = %q", e.CreatedAt)
	}
}

func TestExpenseLegacyTypeIsDaily(t *testing.T) {
	var e Expense
	if err := json.Unmarshal([]byte(`{"id":"1","name":"Old","amount":3,"date":"2023-01-01"}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !e.IsDaily() {
		t.Error("expense without expenseType should count as daily")
	}
}

func TestExpensePatchApply(t *testing.T) {
	e := NewExpense(ExpenseDraft{Name: "Lunch", Amount: 12, Category: "Food", Date: "2024-03-15"}, fixedNow)
	name := "Dinner"
	amount := 20.0

	ExpensePatch{Name: &name, Amount: &amount}.Apply(e)

	if e.Name != "Dinner" || e.Amount != 20 {
		t.Errorf("patch not applied: %+v", e)
	}
	if e.Category != "Food" {
		t.Errorf("Category changed to %q", e.Category)
	}
}

func TestLoanPatchClearPaidDate(t *testing.T) {
	l := NewLoanEntry(LoanDraft{Name: "Alice", Amount: 50, Date: "2024-03-01"}, fixedNow)
	paid := true
	when := "2024-03-10T00:00:00.000Z"
	LoanPatch{IsPaid: &paid, PaidDate: &when}.Apply(l)
	if !l.IsPaid || l.PaidDate == nil || *l.PaidDate != when {
		t.Fatalf("loan not marked paid: %+v", l)
	}

	unpaid := false
	LoanPatch{IsPaid: &unpaid, ClearPaidDate: true}.Apply(l)
	if l.IsPaid || l.PaidDate != nil {
		t.Errorf("loan not reset: %+v", l)
	}
}

func TestDetectCardType(t *testing.T) {
	tests := []struct {
		number string
		want   CardType
	}{
		{"4111 1111 1111 1111", CardTypeVisa},
		{"5500000000000004", CardTypeMastercard},
		{"2221000000000009", CardTypeMastercard},
		{"340000000000009", CardTypeAmex},
		{"370000000000002", CardTypeAmex},
		{"6011000000000004", CardTypeOther},
		{"", CardTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := DetectCardType(tt.number); got != tt.want {
				t.Errorf("DetectCardType(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	if got := MaskCardNumber("4111 1111 1111 1234"); got != "•••• 1234" {
		t.Errorf("MaskCardNumber() = %q", got)
	}
}

func TestNewSavedCardStripsSpaces(t *testing.T) {
	c := NewSavedCard(SavedCardDraft{CardName: "Main", CardNumber: "4111 1111 1111 1111", ExpiryDate: "12/27", CardType: CardTypeVisa}, fixedNow)
	if c.CardNumber != "4111111111111111" {
		t.Errorf("CardNumber = %q", c.CardNumber)
	}
}

func TestProfilePatchChangesMonthlyBudget(t *testing.T) {
	current := DefaultUserProfile()
	zero := 0.0
	five := 500.0

	if (ProfilePatch{MonthlyBudget: &zero}).ChangesMonthlyBudget(current) {
		t.Error("0 -> 0 should not count as a change")
	}
	if (ProfilePatch{}).ChangesMonthlyBudget(current) {
		t.Error("unset budget should not count as a change")
	}
	if !(ProfilePatch{MonthlyBudget: &five}).ChangesMonthlyBudget(current) {
		t.Error("0 -> 500 should count as a change")
	}
}

func TestBackupSectionIsPresent(t *testing.T) {
	var doc BackupDocument
	if err := json.Unmarshal([]byte(`{"appName":"ExpenseDaddy","expenses":[],"loans":null}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	present := map[string]bool{}
	for _, s := range doc.Sections() {
		present[s.Collection] = s.IsPresent()
	}
	if !present[CollectionExpenses] {
		t.Error("expenses should be present")
	}
	if present[CollectionLoans] {
		t.Error("null loans should be absent")
	}
	if present[CollectionFixedExpenses] {
		t.Error("missing fixedExpenses should be absent")
	}
}
