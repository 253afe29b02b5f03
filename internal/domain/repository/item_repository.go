package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for item persistence.
var (
	// ErrItemNotFound is returned when an item key has never been priced.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicatePurchase is returned when recording a purchase that already exists.
	ErrDuplicatePurchase = errors.New("purchase already recorded")
)

// ItemRepository persists priced items and per-buyer purchase rights.
// Purchase rows are written only by the settlement engine.
type ItemRepository interface {
	// FindItem retrieves an item by key.
	FindItem(ctx context.Context, key entity.ItemKey) (*entity.Item, error)

	// FindItemForUpdate retrieves an item and locks its row for the
	// remainder of the transaction.
	FindItemForUpdate(ctx context.Context, key entity.ItemKey) (*entity.Item, error)

	// UpsertItem creates the item on first price-set or updates it in place.
	UpsertItem(ctx context.Context, item *entity.Item) error

	// HasPurchase reports whether buyer holds purchase rights for key.
	HasPurchase(ctx context.Context, buyer entity.Address, key entity.ItemKey) (bool, error)

	// RecordPurchase marks key as purchased by buyer. Returns
	// ErrDuplicatePurchase when the right already exists.
	RecordPurchase(ctx context.Context, buyer entity.Address, key entity.ItemKey) error
}
