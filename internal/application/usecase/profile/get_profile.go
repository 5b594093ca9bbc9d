// Package profile contains user profile and budget use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// GetProfileOutput represents the output of reading the profile.
type GetProfileOutput struct {
	Profile *entity.UserProfile
}

// GetProfileUseCase handles reading the user profile.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns the profile, creating the default one on first read.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &GetProfileOutput{
		Profile: profile,
	}, nil
}
