// Package expense contains expense-related use cases.
package expense

import (
	"strings"

	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// validateDraft checks the fields a new expense must carry.
func validateDraft(draft entity.ExpenseDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name is required", domainerror.ErrMissingName)
	}

	if draft.Amount <= 0 {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.IsValidDate(draft.Date) {
		return domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	if draft.ExpenseType != "" && !draft.ExpenseType.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be 'daily', 'fixed', or 'loan'",
			domainerror.ErrInvalidExpenseType,
		)
	}

	return validateRecurrence(draft.IsRecurring, draft.RecurringType)
}

// validateRecurrence requires a known cadence on recurring expenses.
func validateRecurrence(isRecurring bool, recurringType *entity.RecurringType) error {
	if recurringType != nil && !recurringType.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecurringType,
			"recurring type must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidRecurringType,
		)
	}
	if isRecurring && recurringType == nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecurringType,
			"recurring type is required for recurring expenses",
			domainerror.ErrMissingRecurringType,
		)
	}
	return nil
}

// validatePatch checks enum and date fields of an update. Amounts are not re-validated.
func validatePatch(patch entity.ExpensePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name cannot be empty", domainerror.ErrMissingName)
	}

	if patch.Date != nil && !entity.IsValidDate(*patch.Date) {
		return domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	if patch.ExpenseType != nil && !patch.ExpenseType.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be 'daily', 'fixed', or 'loan'",
			domainerror.ErrInvalidExpenseType,
		)
	}

	if patch.RecurringType != nil && !patch.RecurringType.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecurringType,
			"recurring type must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidRecurringType,
		)
	}

	return nil
}
