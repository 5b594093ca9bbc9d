// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/shopping"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// ShoppingListController handles shopping list endpoints.
type ShoppingListController struct {
	getUseCase     *shopping.GetShoppingListUseCase
	replaceUseCase *shopping.ReplaceShoppingListUseCase
}

// NewShoppingListController creates a new shopping list controller instance.
func NewShoppingListController(
	getUseCase *shopping.GetShoppingListUseCase,
	replaceUseCase *shopping.ReplaceShoppingListUseCase,
) *ShoppingListController {
	return &ShoppingListController{
		getUseCase:     getUseCase,
		replaceUseCase: replaceUseCase,
	}
}

// Get handles GET /shopping-list requests.
func (c *ShoppingListController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingListResponse(output.Items))
}

// Replace handles PUT /shopping-list requests.
func (c *ShoppingListController) Replace(ctx *gin.Context) {
	var req dto.ShoppingListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), shopping.ReplaceShoppingListInput{
		Items: req.Items,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingListResponse(output.Items))
}
