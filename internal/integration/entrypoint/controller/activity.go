// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/activity"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles activity log endpoints.
type ActivityController struct {
	listUseCase *activity.ListActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(listUseCase *activity.ListActivityUseCase) *ActivityController {
	return &ActivityController{
		listUseCase: listUseCase,
	}
}

// List handles GET /activity requests. An optional ?limit= keeps only the newest entries.
func (c *ActivityController) List(ctx *gin.Context) {
	input := activity.ListActivityInput{}
	if limitParam := ctx.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Items))
}
