// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// CreateFixedExpenseRequest represents the request body for fixed expense creation.
type CreateFixedExpenseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateFixedExpenseRequest represents the request body for fixed expense update.
type UpdateFixedExpenseRequest struct {
	Name     *string  `json:"name,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Date     *string  `json:"date,omitempty"`
}

// FixedExpenseResponse represents a single fixed expense in API responses.
type FixedExpenseResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Notes     string  `json:"notes"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
}

// FixedExpenseListResponse represents the response for listing fixed expenses.
type FixedExpenseListResponse struct {
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateFixedExpenseRequest) ToPatch() entity.FixedExpensePatch {
	return entity.FixedExpensePatch{
		Name:     r.Name,
		Amount:   r.Amount,
		Category: r.Category,
		Notes:    r.Notes,
		Date:     r.Date,
	}
}

// ToFixedExpenseResponse converts a domain FixedExpense entity to a FixedExpenseResponse DTO.
func ToFixedExpenseResponse(f *entity.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:        f.ID,
		Name:      f.Name,
		Amount:    f.Amount,
		Category:  f.Category,
		Notes:     f.Notes,
		Date:      f.Date,
		CreatedAt: f.CreatedAt,
	}
}

// ToFixedExpenseListResponse converts a list of fixed expenses to FixedExpenseListResponse.
func ToFixedExpenseListResponse(fixed []entity.FixedExpense) FixedExpenseListResponse {
	items := make([]FixedExpenseResponse, len(fixed))
	for i := range fixed {
		items[i] = ToFixedExpenseResponse(&fixed[i])
	}
	return FixedExpenseListResponse{
		FixedExpenses: items,
	}
}
