// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// CreateLoanRequest represents the request body for loan creation.
type CreateLoanRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Notes  string  `json:"notes"`
	Date   string  `json:"date" binding:"required"`
}

// UpdateLoanRequest represents the request body for loan update.
type UpdateLoanRequest struct {
	Name   *string  `json:"name,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
	Date   *string  `json:"date,omitempty"`
}

// MarkLoanPaidRequest represents the request body for changing a loan's paid state.
type MarkLoanPaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
	IsPaid    bool    `json:"is_paid"`
	PaidDate  *string `json:"paid_date,omitempty"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateLoanRequest) ToPatch() entity.LoanPatch {
	return entity.LoanPatch{
		Name:   r.Name,
		Amount: r.Amount,
		Notes:  r.Notes,
		Date:   r.Date,
	}
}

// ToLoanResponse converts a domain LoanEntry entity to a LoanResponse DTO.
func ToLoanResponse(l *entity.LoanEntry) LoanResponse {
	return LoanResponse{
		ID:        l.ID,
		Name:      l.Name,
		Amount:    l.Amount,
		Notes:     l.Notes,
		Date:      l.Date,
		CreatedAt: l.CreatedAt,
		IsPaid:    l.IsPaid,
		PaidDate:  l.PaidDate,
	}
}

// ToLoanListResponse converts a list of loans to LoanListResponse.
func ToLoanListResponse(loans []entity.LoanEntry) LoanListResponse {
	items := make([]LoanResponse, len(loans))
	for i := range loans {
		items[i] = ToLoanResponse(&loans[i])
	}
	return LoanListResponse{
		Loans: items,
	}
}
