// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/application/usecase/savings"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for savings goal creation.
type CreateSavingsGoalRequest struct {
	Name          string  `json:"name" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64 `json:"current_amount"`
}

// UpdateSavingsGoalRequest represents the request body for savings goal update.
type UpdateSavingsGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Progress      float64 `json:"progress"`
	CreatedAt     string  `json:"created_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateSavingsGoalRequest) ToPatch() entity.SavingsGoalPatch {
	return entity.SavingsGoalPatch{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
	}
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(g *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      savings.Progress(*g),
		CreatedAt:     g.CreatedAt,
	}
}

// ToSavingsGoalListResponse converts goals with progress to SavingsGoalListResponse.
func ToSavingsGoalListResponse(goals []savings.GoalWithProgress) SavingsGoalListResponse {
	items := make([]SavingsGoalResponse, len(goals))
	for i := range goals {
		items[i] = ToSavingsGoalResponse(&goals[i].Goal)
		items[i].Progress = goals[i].Progress
	}
	return SavingsGoalListResponse{
		Goals: items,
	}
}
