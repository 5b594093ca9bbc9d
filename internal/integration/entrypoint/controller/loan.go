// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/loan"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// LoanController handles loan endpoints.
type LoanController struct {
	listUseCase     *loan.ListLoansUseCase
	createUseCase   *loan.CreateLoanUseCase
	updateUseCase   *loan.UpdateLoanUseCase
	markPaidUseCase *loan.MarkLoanPaidUseCase
	deleteUseCase   *loan.DeleteLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	listUseCase *loan.ListLoansUseCase,
	createUseCase *loan.CreateLoanUseCase,
	updateUseCase *loan.UpdateLoanUseCase,
	markPaidUseCase *loan.MarkLoanPaidUseCase,
	deleteUseCase *loan.DeleteLoanUseCase,
) *LoanController {
	return &LoanController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		markPaidUseCase: markPaidUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), loan.CreateLoanInput{
		Name:   req.Name,
		Amount: req.Amount,
		Notes:  req.Notes,
		Date:   req.Date,
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// Update handles PATCH /loans/:id requests.
func (c *LoanController) Update(ctx *gin.Context) {
	var req dto.UpdateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), loan.UpdateLoanInput{
		ID:    ctx.Param("id"),
		Patch: req.ToPatch(),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// MarkPaid handles PUT /loans/:id/paid requests.
func (c *LoanController) MarkPaid(ctx *gin.Context) {
	var req dto.MarkLoanPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), loan.MarkLoanPaidInput{
		ID:     ctx.Param("id"),
		IsPaid: *req.IsPaid,
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), loan.DeleteLoanInput{
		ID: ctx.Param("id"),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
