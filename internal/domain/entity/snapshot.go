package entity

// Snapshot is a consistent in-memory copy of every collection, produced by a refresh.
type Snapshot struct {
	Expenses      []Expense
	Loans         []LoanEntry
	FixedExpenses []FixedExpense
	SavingsGoals  []SavingsGoal
	SavedCards    []SavedCard
	ActivityLog   []ActivityItem
	BudgetHistory []BudgetHistory
	ShoppingList  []string
	Profile       UserProfile
}
