package entity

// Collection keys of the persistent key-value store.
const (
	CollectionExpenses      = "@budgetflow_expenses"
	CollectionLoans         = "@budgetflow_loans"
	CollectionFixedExpenses = "@budgetflow_fixed_expenses"
	CollectionSavingsGoals  = "@budgetflow_savings_goals"
	CollectionSavedCards    = "@budgetflow_saved_cards"
	CollectionActivityLog   = "@budgetflow_activity_log"
	CollectionBudgetHistory = "@budgetflow_budget_history"
	CollectionUserProfile   = "@budgetflow_user_profile"
	CollectionShoppingList  = "@budgetflow_shopping_list"
)
