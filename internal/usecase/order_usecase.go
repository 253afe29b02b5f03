package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
)

// OrderUsecase is the basket aggregator: one mutable ACTIVE order per
// address, settled all-or-nothing by a single notified transfer.
type OrderUsecase interface {
	// CreateOrder opens a new empty ACTIVE order for the caller.
	CreateOrder(ctx context.Context, caller Caller) (*entity.Order, error)

	// CreateAndAddOrder opens a new order pre-populated with keys.
	CreateAndAddOrder(ctx context.Context, caller Caller, keys []entity.ItemKey) (*entity.Order, error)

	// AddItems appends keys to the caller's ACTIVE order. Keys already in
	// the basket are skipped without failing.
	AddItems(ctx context.Context, caller Caller, orderID uint64, keys []entity.ItemKey) (*entity.Order, error)

	// CancelOrder transitions the caller's ACTIVE order to CANCELLED.
	CancelOrder(ctx context.Context, caller Caller, orderID uint64) error

	// GetOrder returns an order with its items.
	GetOrder(ctx context.Context, orderID uint64) (*entity.Order, error)

	// ActiveOrder returns the owner's current ACTIVE order, if any.
	ActiveOrder(ctx context.Context, owner entity.Address) (*entity.Order, error)

	// GetPrice returns the live sum of the basket's item prices. Totals are
	// volatile until the moment of purchase.
	GetPrice(ctx context.Context, orderID uint64) (decimal.Decimal, error)

	// Withdraw pays out funds accrued by the aggregator itself. Admin only.
	Withdraw(ctx context.Context, caller Caller, to entity.Address, amount decimal.Decimal) error
}
