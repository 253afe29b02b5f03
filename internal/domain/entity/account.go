package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a fungible-value account on the ledger. Balances are held in
// base units with 18-decimal fixed-point semantics, so they are kept as
// arbitrary-precision decimals rather than machine integers.
type Account struct {
	Address   Address         `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	IsMinter  bool            `json:"is_minter"` // Approved to mint alongside the administrator.
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LedgerState is the single-row global state of the ledger: the total token
// supply and the mint pause flag toggled by the pause controller.
type LedgerState struct {
	TotalSupply decimal.Decimal `json:"total_supply"`
	MintPaused  bool            `json:"mint_paused"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
