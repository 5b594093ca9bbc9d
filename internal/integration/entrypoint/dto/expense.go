// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Name          string   `json:"name" binding:"required"`
	Amount        float64  `json:"amount" binding:"required"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Notes         string   `json:"notes"`
	Date          string   `json:"date" binding:"required"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringType *string  `json:"recurring_type,omitempty" binding:"omitempty,oneof=daily weekly monthly"`
	ExpenseType   string   `json:"expense_type" binding:"omitempty,oneof=daily fixed loan"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Name          *string   `json:"name,omitempty"`
	Amount        *float64  `json:"amount,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Date          *string   `json:"date,omitempty"`
	IsRecurring   *bool     `json:"is_recurring,omitempty"`
	RecurringType *string   `json:"recurring_type,omitempty" binding:"omitempty,oneof=daily weekly monthly"`
	ExpenseType   *string   `json:"expense_type,omitempty" binding:"omitempty,oneof=daily fixed loan"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Notes         string   `json:"notes"`
	Date          string   `json:"date"`
	CreatedAt     string   `json:"created_at"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringType *string  `json:"recurring_type,omitempty"`
	ExpenseType   string   `json:"expense_type"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateExpenseRequest) ToPatch() entity.ExpensePatch {
	patch := entity.ExpensePatch{
		Name:        r.Name,
		Amount:      r.Amount,
		Category:    r.Category,
		Tags:        r.Tags,
		Notes:       r.Notes,
		Date:        r.Date,
		IsRecurring: r.IsRecurring,
	}
	if r.RecurringType != nil {
		recurringType := entity.RecurringType(*r.RecurringType)
		patch.RecurringType = &recurringType
	}
	if r.ExpenseType != nil {
		expenseType := entity.ExpenseType(*r.ExpenseType)
		patch.ExpenseType = &expenseType
	}
	return patch
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
// The expense type is reported as daily for records stored without one.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	response := ExpenseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Amount:      e.Amount,
		Category:    e.Category,
		Tags:        tags,
		Notes:       e.Notes,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		IsRecurring: e.IsRecurring,
		ExpenseType: string(e.Type()),
	}

	if e.RecurringType != nil {
		recurringType := string(*e.RecurringType)
		response.RecurringType = &recurringType
	}

	return response
}

// ToExpenseListResponse converts a list of expenses to ExpenseListResponse.
func ToExpenseListResponse(expenses []entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		items[i] = ToExpenseResponse(&expenses[i])
	}
	return ExpenseListResponse{
		Expenses: items,
	}
}
