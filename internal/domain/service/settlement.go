// Package service defines the interfaces for domain services consumed by
// the use case layer.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
)

// SettlementTarget is the hook a payment recipient executes synchronously
// as part of a notified transfer. The ledger invokes it inside the same
// transaction that moved the funds: a returned error unwinds the debit,
// the credit and everything the hook itself did.
//
// Implementations must update their own state (purchase rights, accrued
// balances) before moving any value onward, so a re-entrant transfer can
// never observe a half-settled sale.
type SettlementTarget interface {
	// ComponentAddress is the ledger address this target settles for.
	ComponentAddress() entity.Address

	// Settle validates and applies the payment of amount from buyer for the
	// given opaque reference. Returned events are published by the ledger
	// only after the enclosing transaction commits.
	Settle(ctx context.Context, repos repository.RepositoryFactory, buyer entity.Address, reference string, amount decimal.Decimal) ([]*MarketEvent, error)
}

// ItemSettlement reports how one item sale was divided.
type ItemSettlement struct {
	Key              entity.ItemKey
	Buyer            entity.Address
	Seller           entity.Address
	Price            decimal.Decimal
	SellerShare      decimal.Decimal
	PlatformShare    decimal.Decimal
	FacilitatorShare decimal.Decimal
}

// ItemSettler settles a single item purchase inside an already-open
// transaction. The order aggregator uses it to fan a basket payment out to
// each constituent item with the basket owner as the purchasing identity.
type ItemSettler interface {
	SettleItem(ctx context.Context, repos repository.RepositoryFactory, buyer entity.Address, key entity.ItemKey, amount decimal.Decimal) (*ItemSettlement, error)

	// ItemPrice returns the item's current effective price, converting
	// oracle-priced items through the exchange rate. Basket totals must go
	// through this so an oracle-priced item costs the same alone or in an
	// order.
	ItemPrice(ctx context.Context, repos repository.RepositoryFactory, key entity.ItemKey) (decimal.Decimal, error)
}
