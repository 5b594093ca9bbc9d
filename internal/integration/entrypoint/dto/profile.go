// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for profile update.
type UpdateProfileRequest struct {
	Name              *string  `json:"name,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
	MonthlyBudget     *float64 `json:"monthly_budget,omitempty"`
	DailyBudgetTarget *float64 `json:"daily_budget_target,omitempty"`
}

// ProfileResponse represents the profile in API responses.
type ProfileResponse struct {
	Name              string   `json:"name"`
	Currency          string   `json:"currency"`
	MonthlyBudget     float64  `json:"monthly_budget"`
	DailyBudgetTarget float64  `json:"daily_budget_target"`
	CurrencyOptions   []string `json:"currency_options"`
}

// BudgetHistoryResponse represents a single budget history entry.
type BudgetHistoryResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// BudgetHistoryListResponse represents the response for listing budget history.
type BudgetHistoryListResponse struct {
	History []BudgetHistoryResponse `json:"history"`
}

// ActivityResponse represents a single activity log entry.
type ActivityResponse struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Amount      *float64 `json:"amount,omitempty"`
}

// ActivityListResponse represents the response for listing the activity log.
type ActivityListResponse struct {
	Activity []ActivityResponse `json:"activity"`
}

// ShoppingListRequest represents the request body for replacing the shopping list.
type ShoppingListRequest struct {
	Items []string `json:"items" binding:"required"`
}

// ShoppingListResponse represents the shopping list in API responses.
type ShoppingListResponse struct {
	Items []string `json:"items"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateProfileRequest) ToPatch() entity.ProfilePatch {
	return entity.ProfilePatch{
		Name:              r.Name,
		Currency:          r.Currency,
		MonthlyBudget:     r.MonthlyBudget,
		DailyBudgetTarget: r.DailyBudgetTarget,
	}
}

// ToProfileResponse converts a domain UserProfile entity to a ProfileResponse DTO.
func ToProfileResponse(p *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		Name:              p.Name,
		Currency:          p.Currency,
		MonthlyBudget:     p.MonthlyBudget,
		DailyBudgetTarget: p.DailyBudgetTarget,
		CurrencyOptions:   entity.CurrencyOptions,
	}
}

// ToBudgetHistoryListResponse converts budget history entries to BudgetHistoryListResponse.
func ToBudgetHistoryListResponse(history []entity.BudgetHistory) BudgetHistoryListResponse {
	items := make([]BudgetHistoryResponse, len(history))
	for i, h := range history {
		items[i] = BudgetHistoryResponse{
			ID:     h.ID,
			Amount: h.Amount,
			Date:   h.Date,
		}
	}
	return BudgetHistoryListResponse{
		History: items,
	}
}

// ToActivityListResponse converts activity entries to ActivityListResponse.
func ToActivityListResponse(items []entity.ActivityItem) ActivityListResponse {
	activity := make([]ActivityResponse, len(items))
	for i, a := range items {
		activity[i] = ActivityResponse{
			ID:          a.ID,
			Type:        string(a.Type),
			Description: a.Description,
			Date:        a.Date,
			Amount:      a.Amount,
		}
	}
	return ActivityListResponse{
		Activity: activity,
	}
}

// ToShoppingListResponse converts shopping list items to ShoppingListResponse.
func ToShoppingListResponse(items []string) ShoppingListResponse {
	if items == nil {
		items = []string{}
	}
	return ShoppingListResponse{
		Items: items,
	}
}
