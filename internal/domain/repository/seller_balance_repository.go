package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// ErrSellerBalanceInsufficient is returned when a withdrawal exceeds the
// seller's accrued balance.
var ErrSellerBalanceInsufficient = errors.New("seller balance insufficient")

// SellerBalanceRepository tracks per-seller accrued, withdrawable proceeds
// held by the marketplace.
type SellerBalanceRepository interface {
	// SellerBalance returns the accrued balance for owner (zero when absent).
	SellerBalance(ctx context.Context, owner entity.Address) (decimal.Decimal, error)

	// Accrue adds amount to the owner's withdrawable balance.
	Accrue(ctx context.Context, owner entity.Address, amount decimal.Decimal) error

	// Deduct subtracts amount after locking the row. Returns
	// ErrSellerBalanceInsufficient when amount exceeds the balance.
	Deduct(ctx context.Context, owner entity.Address, amount decimal.Decimal) error
}
