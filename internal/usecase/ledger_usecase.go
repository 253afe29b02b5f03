package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"datadex/internal/domain/entity"
)

// LedgerUsecase is the fungible-value ledger: balances, supply, bridge
// mint/burn, and the notified transfer that drives settlement.
type LedgerUsecase interface {
	// Mint credits newly created value to an account. Admin or approved
	// minter only; rejected while minting is paused.
	Mint(ctx context.Context, caller Caller, to entity.Address, amount decimal.Decimal) error

	// Burn removes value from the caller's balance and records a pending
	// burn request for later bridge re-mint.
	Burn(ctx context.Context, caller Caller, amount decimal.Decimal, annotation string) (*entity.BurnRequest, error)

	// BridgeMint finalizes a burn by re-minting it on this network.
	// Idempotent per request id; replays are rejected.
	BridgeMint(ctx context.Context, caller Caller, requestID uint64, burner entity.Address, amount decimal.Decimal, detailHash string, networkID int64) error

	// Transfer moves value between accounts with no settlement hook.
	Transfer(ctx context.Context, caller Caller, to entity.Address, amount decimal.Decimal) error

	// TransferWithNotify moves value to a settlement component and invokes
	// its hook inside the same transaction. The returned receipt exists
	// only when the whole settlement committed.
	TransferWithNotify(ctx context.Context, caller Caller, recipient entity.Address, reference string, amount decimal.Decimal) (*entity.Receipt, error)

	// SetMintPause toggles the global mint pause. Pause-controller role only.
	SetMintPause(ctx context.Context, caller Caller, paused bool) error

	// AddMinter approves an address to mint alongside the administrator.
	AddMinter(ctx context.Context, caller Caller, addr entity.Address) error

	// Balance returns the balance of an account (zero when absent).
	Balance(ctx context.Context, addr entity.Address) (decimal.Decimal, error)

	// TotalSupply returns the current total supply.
	TotalSupply(ctx context.Context) (decimal.Decimal, error)

	// GetReceipt returns one receipt from the audit trail.
	GetReceipt(ctx context.Context, id uint64) (*entity.Receipt, error)

	// ListReceipts pages through the audit trail in id order.
	ListReceipts(ctx context.Context, afterID uint64, limit int) ([]*entity.Receipt, error)
}
