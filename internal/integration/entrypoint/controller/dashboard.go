// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/dashboard"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetSummaryUseCase
	calendarUseCase *dashboard.GetCalendarUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	calendarUseCase *dashboard.GetCalendarUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		calendarUseCase: calendarUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Calendar handles GET /dashboard/calendar requests.
// Query params: year and month (both optional, default to the current month).
func (c *DashboardController) Calendar(ctx *gin.Context) {
	// Parse query parameters
	year, ok := intQuery(ctx, "year", domainerror.ErrCodeInvalidCalendarYear)
	if !ok {
		return
	}
	month, ok := intQuery(ctx, "month", domainerror.ErrCodeInvalidCalendarMonth)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), dashboard.GetCalendarInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output.Calendar))
}

// intQuery parses an optional integer query parameter, writing a 400 when it is malformed.
func intQuery(ctx *gin.Context, name string, code domainerror.DashboardErrorCode) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must be an integer",
			Code:  string(code),
		})
		return 0, false
	}
	return value, true
}
