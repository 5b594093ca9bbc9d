// Package shopping contains shopping list use cases.
package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
)

// GetShoppingListOutput represents the output of reading the shopping list.
type GetShoppingListOutput struct {
	Items []string
}

// GetShoppingListUseCase handles reading the shopping list.
type GetShoppingListUseCase struct {
	listRepo adapter.ShoppingListRepository
}

// NewGetShoppingListUseCase creates a new GetShoppingListUseCase instance.
func NewGetShoppingListUseCase(listRepo adapter.ShoppingListRepository) *GetShoppingListUseCase {
	return &GetShoppingListUseCase{
		listRepo: listRepo,
	}
}

// Execute returns the shopping list.
func (uc *GetShoppingListUseCase) Execute(ctx context.Context) (*GetShoppingListOutput, error) {
	items, err := uc.listRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	return &GetShoppingListOutput{
		Items: items,
	}, nil
}

// ReplaceShoppingListInput represents the input for replacing the shopping list.
type ReplaceShoppingListInput struct {
	Items []string
}

// ReplaceShoppingListOutput represents the output of replacing the shopping list.
type ReplaceShoppingListOutput struct {
	Items []string
}

// ReplaceShoppingListUseCase handles overwriting the shopping list.
type ReplaceShoppingListUseCase struct {
	listRepo adapter.ShoppingListRepository
}

// NewReplaceShoppingListUseCase creates a new ReplaceShoppingListUseCase instance.
func NewReplaceShoppingListUseCase(listRepo adapter.ShoppingListRepository) *ReplaceShoppingListUseCase {
	return &ReplaceShoppingListUseCase{
		listRepo: listRepo,
	}
}

// Execute trims every item, drops blank ones and stores the rest in order.
func (uc *ReplaceShoppingListUseCase) Execute(ctx context.Context, input ReplaceShoppingListInput) (*ReplaceShoppingListOutput, error) {
	items := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if err := uc.listRepo.Replace(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to replace shopping list: %w", err)
	}

	return &ReplaceShoppingListOutput{
		Items: items,
	}, nil
}
