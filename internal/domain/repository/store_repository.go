package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not registered.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when registering an already-known store.
	ErrDuplicateStore = errors.New("store already registered")
)

// StoreRepository persists the marketplace's view of registered data stores.
type StoreRepository interface {
	// CreateStore registers a store with its owner and facilitator addresses.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStore retrieves a store by address.
	FindStore(ctx context.Context, addr entity.Address) (*entity.Store, error)
}
