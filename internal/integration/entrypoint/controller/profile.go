// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/profile"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile and budget history endpoints.
type ProfileController struct {
	getUseCase     *profile.GetProfileUseCase
	updateUseCase  *profile.UpdateProfileUseCase
	historyUseCase *profile.ListBudgetHistoryUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
	historyUseCase *profile.ListBudgetHistoryUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		historyUseCase: historyUseCase,
	}
}

// Get handles GET /profile requests. The default profile is created on first access.
func (c *ProfileController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Update handles PATCH /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		Patch: req.ToPatch(),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// BudgetHistory handles GET /profile/budget-history requests.
func (c *ProfileController) BudgetHistory(ctx *gin.Context) {
	output, err := c.historyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetHistoryListResponse(output.History))
}
