package entity

import "time"

// MaxActivityLogSize is the number of entries the activity log keeps.
const MaxActivityLogSize = 200

// ActivityType identifies the mutation an activity entry records.
type ActivityType string

const (
	ActivityExpenseAdded   ActivityType = "expense_added"
	ActivityExpenseEdited  ActivityType = "expense_edited"
	ActivityExpenseDeleted ActivityType = "expense_deleted"
	ActivityBudgetUpdated  ActivityType = "budget_updated"
	ActivityCardAdded      ActivityType = "card_added"
	ActivityCardUpdated    ActivityType = "card_updated"
	ActivityCardDeleted    ActivityType = "card_deleted"
	ActivityGoalAdded      ActivityType = "goal_added"
	ActivityGoalUpdated    ActivityType = "goal_updated"
	ActivityGoalDeleted    ActivityType = "goal_deleted"
	ActivityLoanAdded      ActivityType = "loan_added"
	ActivityLoanUpdated    ActivityType = "loan_updated"
	ActivityLoanDeleted    ActivityType = "loan_deleted"
	ActivityFixedAdded     ActivityType = "fixed_added"
	ActivityFixedUpdated   ActivityType = "fixed_updated"
	ActivityFixedDeleted   ActivityType = "fixed_deleted"
)

// ActivityItem is one entry of the audit trail.
type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Amount      *float64     `json:"amount,omitempty"`
}

// NewActivityItem creates an ActivityItem stamped with now.
func NewActivityItem(activityType ActivityType, description string, amount *float64, now time.Time) ActivityItem {
	var amt *float64
	if amount != nil {
		v := *amount
		amt = &v
	}
	return ActivityItem{
		ID:          NewID(now),
		Type:        activityType,
		Description: description,
		Date:        Timestamp(now),
		Amount:      amt,
	}
}
