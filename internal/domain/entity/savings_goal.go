package entity

import "time"

// SavingsGoal tracks progress towards a savings target. CurrentAmount may exceed
// TargetAmount.
type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	CreatedAt     string  `json:"createdAt"`
}

// SavingsGoalDraft holds the caller-supplied fields of a new goal.
type SavingsGoalDraft struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
}

// NewSavingsGoal creates a SavingsGoal from a draft.
func NewSavingsGoal(draft SavingsGoalDraft, now time.Time) *SavingsGoal {
	return &SavingsGoal{
		ID:            NewID(now),
		Name:          draft.Name,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: draft.CurrentAmount,
		CreatedAt:     Timestamp(now),
	}
}

// SavingsGoalPatch lists the fields an update may change.
type SavingsGoalPatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
}

// Apply merges the patch into g.
func (p SavingsGoalPatch) Apply(g *SavingsGoal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
}
