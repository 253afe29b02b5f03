package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for ledger persistence.
var (
	// ErrAccountNotFound is returned when an account row does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientBalance is returned when a debit exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AccountRepository defines ledger account persistence. Credit and Debit
// mutate balances in place; callers rely on the enclosing transaction for
// atomicity across multiple movements.
type AccountRepository interface {
	// FindAccount retrieves an account by address.
	FindAccount(ctx context.Context, addr entity.Address) (*entity.Account, error)

	// Credit adds amount to the account's balance, creating the row when absent.
	Credit(ctx context.Context, addr entity.Address, amount decimal.Decimal) error

	// Debit subtracts amount from the account's balance after locking the row.
	// Returns ErrInsufficientBalance when the balance does not cover amount.
	Debit(ctx context.Context, addr entity.Address, amount decimal.Decimal) error

	// SetMinter flags or unflags an address as an approved minter.
	SetMinter(ctx context.Context, addr entity.Address, approved bool) error

	// IsMinter reports whether the address is an approved minter.
	IsMinter(ctx context.Context, addr entity.Address) (bool, error)

	// LedgerState retrieves the global supply and mint-pause state, locking
	// the row for the remainder of the transaction.
	LedgerState(ctx context.Context) (*entity.LedgerState, error)

	// AddSupply adjusts the total supply by delta (negative on burn).
	AddSupply(ctx context.Context, delta decimal.Decimal) error

	// SetMintPaused toggles the global mint pause flag.
	SetMintPaused(ctx context.Context, paused bool) error
}
