// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/expense"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests. An optional ?type= restricts the expense type.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{}
	if typeParam := ctx.Query("type"); typeParam != "" {
		expenseType := entity.ExpenseType(typeParam)
		if !expenseType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be 'daily', 'fixed', or 'loan'",
				Code:  string(domainerror.ErrCodeInvalidExpenseType),
			})
			return
		}
		input.ExpenseType = &expenseType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	// Build input
	input := expense.CreateExpenseInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Tags:        req.Tags,
		Notes:       req.Notes,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
		ExpenseType: entity.ExpenseType(req.ExpenseType),
	}
	if req.RecurringType != nil {
		recurringType := entity.RecurringType(*req.RecurringType)
		input.RecurringType = &recurringType
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ID:    ctx.Param("id"),
		Patch: req.ToPatch(),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests. Deleting an unknown id succeeds.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ID: ctx.Param("id"),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
