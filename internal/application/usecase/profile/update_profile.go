// Package profile contains user profile and budget use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating the profile.
type UpdateProfileInput struct {
	Patch entity.ProfilePatch
}

// UpdateProfileOutput represents the output of updating the profile.
type UpdateProfileOutput struct {
	Profile *entity.UserProfile
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	patch := input.Patch

	// Step 1: Validate the fields being changed
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domainerror.NewProfileError(domainerror.ErrCodeMissingProfileName, "name cannot be empty", domainerror.ErrMissingProfileName)
		}
		patch.Name = &name
	}
	if patch.Currency != nil && strings.TrimSpace(*patch.Currency) == "" {
		return nil, domainerror.NewProfileError(domainerror.ErrCodeMissingCurrency, "currency cannot be empty", domainerror.ErrMissingCurrency)
	}
	if patch.MonthlyBudget != nil && *patch.MonthlyBudget < 0 {
		return nil, domainerror.NewProfileError(domainerror.ErrCodeInvalidMonthlyBudget, "monthly budget cannot be negative", domainerror.ErrInvalidMonthlyBudget)
	}
	if patch.DailyBudgetTarget != nil && *patch.DailyBudgetTarget < 0 {
		return nil, domainerror.NewProfileError(domainerror.ErrCodeInvalidDailyBudgetTarget, "daily budget target cannot be negative", domainerror.ErrInvalidDailyBudgetTarget)
	}

	// Step 2: Persist, which also tracks monthly budget changes
	profile, err := uc.profileRepo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &UpdateProfileOutput{Profile: profile}, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{
		Profile: profile,
	}, nil
}
