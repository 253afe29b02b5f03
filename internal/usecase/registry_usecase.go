package usecase

import (
	"context"

	"datadex/internal/domain/entity"
)

// RegistryUsecase is the administrative registry: revenue-split
// percentages, the exchange rate for oracle-priced items, and the
// marketplace's view of registered stores.
type RegistryUsecase interface {
	// SetPercentage updates a revenue-split slot. Admin only; slot must be
	// a known slot and value within [0, 100].
	SetPercentage(ctx context.Context, caller Caller, slot int, value int) error

	// GetPercentage returns the percentage for a known slot.
	GetPercentage(ctx context.Context, slot int) (int, error)

	// SetRate updates the exchange rate. Admin only.
	SetRate(ctx context.Context, caller Caller, rate int64) error

	// GetRate returns the current exchange rate.
	GetRate(ctx context.Context) (int64, error)

	// RegisterStore registers a store with its owner and facilitator
	// addresses. Admin only.
	RegisterStore(ctx context.Context, caller Caller, store *entity.Store) error

	// GetStore returns a registered store.
	GetStore(ctx context.Context, addr entity.Address) (*entity.Store, error)
}
