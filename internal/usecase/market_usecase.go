package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
)

// MarketUsecase is the per-item marketplace: pricing, sale flags, purchase
// rights and seller withdrawals. Settlement itself is driven by the ledger
// through the marketplace's settlement hook.
type MarketUsecase interface {
	// SetPrice sets an item's price, creating the item on first use.
	// Store owner only.
	SetPrice(ctx context.Context, caller Caller, key entity.ItemKey, price decimal.Decimal) error

	// SetSale toggles the item's on-sale flag. Store owner only.
	SetSale(ctx context.Context, caller Caller, key entity.ItemKey, onSale bool) error

	// SetOraclePricing opts the item into exchange-rate pricing. Store
	// owner only.
	SetOraclePricing(ctx context.Context, caller Caller, key entity.ItemKey, enabled bool) error

	// GetItem returns the stored item.
	GetItem(ctx context.Context, key entity.ItemKey) (*entity.Item, error)

	// GetPrice returns the item's effective price, converting oracle-priced
	// items through the current exchange rate.
	GetPrice(ctx context.Context, key entity.ItemKey) (decimal.Decimal, error)

	// IsSale reports whether the item is currently for sale.
	IsSale(ctx context.Context, key entity.ItemKey) (bool, error)

	// GetPurchaseStatus reports whether addr holds purchase rights for key.
	// The store owner is implicitly purchased for their own items.
	GetPurchaseStatus(ctx context.Context, addr entity.Address, key entity.ItemKey) (bool, error)

	// SellerBalance returns the owner's accrued, withdrawable proceeds.
	SellerBalance(ctx context.Context, owner entity.Address) (decimal.Decimal, error)

	// Withdraw pays out part of the caller's accrued seller balance to the
	// given address via a plain ledger transfer.
	Withdraw(ctx context.Context, caller Caller, to entity.Address, amount decimal.Decimal) error
}
