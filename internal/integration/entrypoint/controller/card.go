// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/card"
	"github.com/expense-daddy/backend/internal/domain/entity"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// CardController handles saved card endpoints.
type CardController struct {
	listUseCase   *card.ListCardsUseCase
	createUseCase *card.CreateCardUseCase
	updateUseCase *card.UpdateCardUseCase
	deleteUseCase *card.DeleteCardUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	listUseCase *card.ListCardsUseCase,
	createUseCase *card.CreateCardUseCase,
	updateUseCase *card.UpdateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
) *CardController {
	return &CardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(output.Cards))
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), card.CreateCardInput{
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CardType:   entity.CardType(req.CardType),
		IsDefault:  req.IsDefault,
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// Update handles PATCH /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), card.UpdateCardInput{
		ID:    ctx.Param("id"),
		Patch: req.ToPatch(),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{
		ID: ctx.Param("id"),
	})
	if err != nil && !activityNotRecorded(ctx, err) {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
