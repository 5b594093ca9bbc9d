package entity

import "encoding/json"

const (
	// BackupAppName identifies documents produced by this application.
	BackupAppName = "ExpenseDaddy"
	// BackupVersion is the document version written by export.
	BackupVersion = 2
)

// BackupDocument is the single JSON artifact produced by export and consumed by import.
// Collections are carried as raw JSON so a round trip reproduces the stored bytes.
type BackupDocument struct {
	Version       int             `json:"version"`
	ExportDate    string          `json:"exportDate"`
	AppName       string          `json:"appName"`
	Expenses      json.RawMessage `json:"expenses,omitempty"`
	Profile       json.RawMessage `json:"profile,omitempty"`
	SavingsGoals  json.RawMessage `json:"savingsGoals,omitempty"`
	SavedCards    json.RawMessage `json:"savedCards,omitempty"`
	ActivityLog   json.RawMessage `json:"activityLog,omitempty"`
	BudgetHistory json.RawMessage `json:"budgetHistory,omitempty"`
	ShoppingList  json.RawMessage `json:"shoppingList,omitempty"`
	Loans         json.RawMessage `json:"loans,omitempty"`
	FixedExpenses json.RawMessage `json:"fixedExpenses,omitempty"`
}

// BackupSection pairs a document field with the collection it maps to.
type BackupSection struct {
	Field      string
	Collection string
	Data       *json.RawMessage
}

// Sections lists the document's collections in document order.
func (d *BackupDocument) Sections() []BackupSection {
	return []BackupSection{
		{Field: "expenses", Collection: CollectionExpenses, Data: &d.Expenses},
		{Field: "profile", Collection: CollectionUserProfile, Data: &d.Profile},
		{Field: "savingsGoals", Collection: CollectionSavingsGoals, Data: &d.SavingsGoals},
		{Field: "savedCards", Collection: CollectionSavedCards, Data: &d.SavedCards},
		{Field: "activityLog", Collection: CollectionActivityLog, Data: &d.ActivityLog},
		{Field: "budgetHistory", Collection: CollectionBudgetHistory, Data: &d.BudgetHistory},
		{Field: "shoppingList", Collection: CollectionShoppingList, Data: &d.ShoppingList},
		{Field: "loans", Collection: CollectionLoans, Data: &d.Loans},
		{Field: "fixedExpenses", Collection: CollectionFixedExpenses, Data: &d.FixedExpenses},
	}
}

// IsPresent reports whether a section carries data. A JSON null counts as absent.
func (s BackupSection) IsPresent() bool {
	if s.Data == nil || len(*s.Data) == 0 {
		return false
	}
	return string(*s.Data) != "null"
}
