package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for registry persistence.
var (
	// ErrSplitSlotNotFound is returned for an unknown percentage slot.
	ErrSplitSlotNotFound = errors.New("split slot not found")
	// ErrRateNotFound is returned when the exchange rate has never been set.
	ErrRateNotFound = errors.New("exchange rate not found")
)

// RegistryRepository persists the revenue-split percentages and the
// exchange rate consumed by oracle-priced items.
type RegistryRepository interface {
	// FindSplit retrieves the percentage for a slot.
	FindSplit(ctx context.Context, slot int) (*entity.RevenueSplit, error)

	// SaveSplit updates the percentage for a slot.
	SaveSplit(ctx context.Context, slot int, percentage int) error

	// FindRate retrieves the current exchange rate.
	FindRate(ctx context.Context) (*entity.ExchangeRate, error)

	// SaveRate updates the exchange rate.
	SaveRate(ctx context.Context, rate int64) error
}
