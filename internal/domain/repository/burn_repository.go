package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for burn persistence.
var (
	// ErrBurnNotFound is returned when a burn request id does not exist.
	ErrBurnNotFound = errors.New("burn request not found")
	// ErrBurnAlreadyReminted is returned when a bridge mint replays a request id.
	ErrBurnAlreadyReminted = errors.New("burn request already reminted")
)

// BurnRepository persists pending burn requests awaiting bridge re-mint.
type BurnRepository interface {
	// CreateBurn stores a burn request and fills its generated id.
	CreateBurn(ctx context.Context, burn *entity.BurnRequest) error

	// SaveDetailHash stores the detail hash computed from the generated id.
	SaveDetailHash(ctx context.Context, id uint64, hash string) error

	// FindBurnForUpdate retrieves a burn request and locks its row.
	FindBurnForUpdate(ctx context.Context, id uint64) (*entity.BurnRequest, error)

	// MarkReminted flags a burn request as consumed by a bridge mint.
	// Returns ErrBurnAlreadyReminted when it was already consumed.
	MarkReminted(ctx context.Context, id uint64) error
}
