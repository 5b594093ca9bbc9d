// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/savings"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	listUseCase   *savings.ListSavingsGoalsUseCase
	createUseCase *savings.CreateSavingsGoalUseCase
	updateUseCase *savings.UpdateSavingsGoalUseCase
	deleteUseCase *savings.DeleteSavingsGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	listUseCase *savings.ListSavingsGoalsUseCase,
	createUseCase *savings.CreateSavingsGoalUseCase,
	updateUseCase *savings.UpdateSavingsGoalUseCase,
	deleteUseCase *savings.DeleteSavingsGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings-goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(output.Goals))
}

// Create handles POST /savings-goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savings.CreateSavingsGoalInput{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// Update handles PATCH /savings-goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), savings.UpdateSavingsGoalInput{
		ID:    ctx.Param("id"),
		Patch: req.ToPatch(),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /savings-goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteSavingsGoalInput{
		ID: ctx.Param("id"),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
