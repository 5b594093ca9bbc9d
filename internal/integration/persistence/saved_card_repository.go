// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// savedCardRepository implements the adapter.SavedCardRepository interface.
type savedCardRepository struct {
	store    *CollectionStore
	activity adapter.ActivityRecorder
	clock    adapter.Clock
}

// NewSavedCardRepository creates a new saved card repository instance.
func NewSavedCardRepository(store *CollectionStore, activity adapter.ActivityRecorder, clock adapter.Clock) adapter.SavedCardRepository {
	return &savedCardRepository{
		store:    store,
		activity: activity,
		clock:    clock,
	}
}

// List returns every stored card in insertion order.
func (r *savedCardRepository) List(ctx context.Context) ([]entity.SavedCard, error) {
	cards, err := loadCollection(ctx, r.store, entity.CollectionSavedCards, []entity.SavedCard{})
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []entity.SavedCard{}
	}
	return cards, nil
}

// Add appends a new card. Other cards keep their isDefault flag.
func (r *savedCardRepository) Add(ctx context.Context, draft entity.SavedCardDraft) (*entity.SavedCard, error) {
	card := entity.NewSavedCard(draft, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionSavedCards, []entity.SavedCard{},
		func(cards []entity.SavedCard) ([]entity.SavedCard, bool, error) {
			return append(cards, *card), true, nil
		})
	if err != nil {
		return nil, err
	}

	return card, recordActivity(ctx, r.activity, entity.ActivityCardAdded, "Added card: "+card.CardName, nil)
}

// Update merges the patch into the card with the given id.
func (r *savedCardRepository) Update(ctx context.Context, id string, patch entity.SavedCardPatch) (*entity.SavedCard, error) {
	var updated *entity.SavedCard

	err := mutateCollection(ctx, r.store, entity.CollectionSavedCards, []entity.SavedCard{},
		func(cards []entity.SavedCard) ([]entity.SavedCard, bool, error) {
			i := slices.IndexFunc(cards, func(c entity.SavedCard) bool { return c.ID == id })
			if i == -1 {
				return nil, false, domainerror.ErrRecordNotFound
			}
			patch.Apply(&cards[i])
			c := cards[i]
			updated = &c
			return cards, true, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, recordActivity(ctx, r.activity, entity.ActivityCardUpdated, "Updated card: "+updated.CardName, nil)
}

// Delete removes the card with the given id. Unknown ids are ignored.
func (r *savedCardRepository) Delete(ctx context.Context, id string) error {
	var deleted *entity.SavedCard

	err := mutateCollection(ctx, r.store, entity.CollectionSavedCards, []entity.SavedCard{},
		func(cards []entity.SavedCard) ([]entity.SavedCard, bool, error) {
			i := slices.IndexFunc(cards, func(c entity.SavedCard) bool { return c.ID == id })
			if i == -1 {
				return cards, false, nil
			}
			c := cards[i]
			deleted = &c
			return slices.Delete(cards, i, i+1), true, nil
		})
	if err != nil || deleted == nil {
		return err
	}

	return recordActivity(ctx, r.activity, entity.ActivityCardDeleted, "Removed card: "+deleted.CardName, nil)
}
