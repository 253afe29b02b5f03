package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"datadex/config"
	"datadex/internal/domain/constants"
	"datadex/internal/domain/entity"
	domainerrors "datadex/internal/domain/errors"
	"datadex/internal/domain/repository"
	"datadex/internal/domain/service"
	"datadex/internal/usecase"
)

// SettlementTargets indexes the registered settlement components by their
// ledger address. A transfer notifies at most one of them.
type SettlementTargets map[entity.Address]service.SettlementTarget

// NewSettlementTargets collects the components that accept notified
// transfers. Both the marketplace and the aggregator register here.
func NewSettlementTargets(market usecase.MarketUsecase, orderUC usecase.OrderUsecase) SettlementTargets {
	targets := make(SettlementTargets)
	for _, candidate := range []any{market, orderUC} {
		if target, ok := candidate.(service.SettlementTarget); ok {
			targets[target.ComponentAddress()] = target
		}
	}

	return targets
}

type ledgerService struct {
	accountRepo repository.AccountRepository
	receiptRepo repository.ReceiptRepository
	txManager   repository.TransactionManager
	targets     SettlementTargets
	publisher   service.EventPublisher
	logger      *slog.Logger

	networkID int64
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	ReceiptRepo repository.ReceiptRepository
	TxManager   repository.TransactionManager
	Targets     SettlementTargets
	Publisher   service.EventPublisher
	Logger      *slog.Logger
	Config      *config.Config
}

// NewLedgerService creates the fungible-value ledger service.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		accountRepo: params.AccountRepo,
		receiptRepo: params.ReceiptRepo,
		txManager:   params.TxManager,
		targets:     params.Targets,
		publisher:   params.Publisher,
		logger:      params.Logger,
		networkID:   params.Config.Settlement.NetworkID,
	}
}

// Mint credits newly created value to an account.
func (s *ledgerService) Mint(ctx context.Context, caller usecase.Caller, to entity.Address, amount decimal.Decimal) error {
	if to.IsZero() || !amount.IsPositive() {
		return domainerrors.ErrInvalidArgument.WithDetails("mint needs a recipient and a positive amount")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()

		if err := s.requireMinter(ctx, accounts, caller); err != nil {
			return err
		}
		if err := s.requireMintUnpaused(ctx, accounts); err != nil {
			return err
		}

		if err := accounts.Credit(ctx, to, amount); err != nil {
			return errors.Wrap(err, "failed to credit minted value")
		}

		return accounts.AddSupply(ctx, amount)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:   constants.EventMinted,
		By:     caller.Address.String(),
		Seller: to.String(),
		Amount: amount.String(),
	})

	return nil
}

// Burn removes value from the caller's balance and records a pending burn
// request. The detail hash is derived from the generated id so the bridge
// can later verify the re-mint parameters.
func (s *ledgerService) Burn(ctx context.Context, caller usecase.Caller, amount decimal.Decimal, annotation string) (*entity.BurnRequest, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("burn amount must be positive")
	}

	var burn *entity.BurnRequest
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()

		if err := accounts.Debit(ctx, caller.Address, amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientBalance) {
				return domainerrors.ErrInsufficientBalance
			}

			return errors.Wrap(err, "failed to debit burner")
		}
		if err := accounts.AddSupply(ctx, amount.Neg()); err != nil {
			return errors.Wrap(err, "failed to reduce supply")
		}

		burns := f.NewBurnRepository()
		burn = &entity.BurnRequest{
			Burner:     caller.Address,
			Amount:     amount,
			Annotation: annotation,
		}
		if err := burns.CreateBurn(ctx, burn); err != nil {
			return errors.Wrap(err, "failed to record burn request")
		}

		burn.DetailHash = service.BurnDetailHash(burn.ID, burn.Burner, burn.Amount, burn.Annotation)

		return burns.SaveDetailHash(ctx, burn.ID, burn.DetailHash)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:       constants.EventBurned,
		BurnID:     burn.ID,
		By:         caller.Address.String(),
		Amount:     amount.String(),
		Annotation: annotation,
		DetailHash: burn.DetailHash,
	})

	return burn, nil
}

// BridgeMint finalizes a burn by re-minting it on this network. A request
// id can be consumed exactly once; replays fail.
func (s *ledgerService) BridgeMint(ctx context.Context, caller usecase.Caller, requestID uint64, burner entity.Address, amount decimal.Decimal, detailHash string, networkID int64) error {
	if networkID != s.networkID {
		return domainerrors.ErrInvalidArgument.WithDetails("bridge mint targets a different network")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()

		if err := s.requireMinter(ctx, accounts, caller); err != nil {
			return err
		}
		if err := s.requireMintUnpaused(ctx, accounts); err != nil {
			return err
		}

		burns := f.NewBurnRepository()
		burn, err := burns.FindBurnForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrBurnNotFound) {
				return domainerrors.ErrBurnNotFound
			}

			return errors.Wrap(err, "failed to load burn request")
		}
		if burn.Reminted {
			return domainerrors.ErrInvalidArgument.WithDetails("burn request already reminted")
		}
		if burn.Burner != burner || !burn.Amount.Equal(amount) || burn.DetailHash != detailHash {
			return domainerrors.ErrInvalidArgument.WithDetails("bridge mint parameters do not match the burn request")
		}

		if err := burns.MarkReminted(ctx, requestID); err != nil {
			if errors.Is(err, repository.ErrBurnAlreadyReminted) {
				return domainerrors.ErrInvalidArgument.WithDetails("burn request already reminted")
			}

			return errors.Wrap(err, "failed to mark burn reminted")
		}

		if err := accounts.Credit(ctx, burner, amount); err != nil {
			return errors.Wrap(err, "failed to credit reminted value")
		}

		return accounts.AddSupply(ctx, amount)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:       constants.EventBridgeMinted,
		BurnID:     requestID,
		By:         caller.Address.String(),
		Seller:     burner.String(),
		Amount:     amount.String(),
		DetailHash: detailHash,
	})

	return nil
}

// Transfer moves value between accounts with no settlement hook.
func (s *ledgerService) Transfer(ctx context.Context, caller usecase.Caller, to entity.Address, amount decimal.Decimal) error {
	if to.IsZero() || !amount.IsPositive() {
		return domainerrors.ErrInvalidArgument.WithDetails("transfer needs a recipient and a positive amount")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()

		if err := accounts.Debit(ctx, caller.Address, amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientBalance) {
				return domainerrors.ErrInsufficientBalance
			}

			return errors.Wrap(err, "failed to debit sender")
		}

		return accounts.Credit(ctx, to, amount)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:   constants.EventTransferred,
		Buyer:  caller.Address.String(),
		Seller: to.String(),
		Amount: amount.String(),
	})

	return nil
}

// TransferWithNotify moves value to a settlement component and runs its
// hook inside the same transaction. When the hook fails, the debit, the
// credit and the receipt all unwind together; hook events reach the bus
// only after the commit.
func (s *ledgerService) TransferWithNotify(ctx context.Context, caller usecase.Caller, recipient entity.Address, reference string, amount decimal.Decimal) (*entity.Receipt, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("transfer amount must be positive")
	}

	target, ok := s.targets[recipient]
	if !ok {
		return nil, domainerrors.ErrUnknownRecipient.WithDetails("recipient is not a settlement component")
	}

	var receipt *entity.Receipt
	var hookEvents []*service.MarketEvent

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		accounts := f.NewAccountRepository()

		if err := accounts.Debit(ctx, caller.Address, amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientBalance) {
				return domainerrors.ErrInsufficientBalance
			}

			return errors.Wrap(err, "failed to debit buyer")
		}
		if err := accounts.Credit(ctx, recipient, amount); err != nil {
			return errors.Wrap(err, "failed to credit settlement component")
		}

		receipt = &entity.Receipt{
			Buyer:     caller.Address,
			Seller:    recipient,
			Reference: reference,
			Amount:    amount,
		}
		if err := f.NewReceiptRepository().Append(ctx, receipt); err != nil {
			return errors.Wrap(err, "failed to append receipt")
		}

		events, err := target.Settle(ctx, f, caller.Address, reference, amount)
		if err != nil {
			return err
		}
		hookEvents = events

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:      constants.EventTransferred,
		ReceiptID: receipt.ID,
		Buyer:     caller.Address.String(),
		Seller:    recipient.String(),
		Reference: reference,
		Amount:    amount.String(),
	})
	for _, event := range hookEvents {
		s.publish(ctx, event)
	}

	return receipt, nil
}

// SetMintPause toggles the global mint pause.
func (s *ledgerService) SetMintPause(ctx context.Context, caller usecase.Caller, paused bool) error {
	if !caller.HasRole(constants.RoleMintPauser) {
		return domainerrors.ErrNotAuthorized.WithDetails("only the pause controller may toggle minting")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewAccountRepository().SetMintPaused(ctx, paused)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:     constants.EventMintPauseChanged,
		By:       caller.Address.String(),
		NewValue: boolString(paused),
	})

	return nil
}

// AddMinter approves an address to mint alongside the administrator.
func (s *ledgerService) AddMinter(ctx context.Context, caller usecase.Caller, addr entity.Address) error {
	if !caller.HasRole(constants.RoleAdmin) {
		return domainerrors.ErrNotAuthorized.WithDetails("only an administrator may approve minters")
	}
	if addr.IsZero() {
		return domainerrors.ErrInvalidArgument.WithDetails("minter address is required")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewAccountRepository().SetMinter(ctx, addr, true)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, &service.MarketEvent{
		Type:   constants.EventMinterAdded,
		By:     caller.Address.String(),
		Seller: addr.String(),
	})

	return nil
}

// Balance returns the balance of an account, zero when the account has
// never held value.
func (s *ledgerService) Balance(ctx context.Context, addr entity.Address) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccount(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Zero, errors.Wrap(err, "failed to find account")
	}

	return account.Balance, nil
}

// TotalSupply returns the current total supply.
func (s *ledgerService) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	var supply decimal.Decimal
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		state, err := f.NewAccountRepository().LedgerState(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load ledger state")
		}
		supply = state.TotalSupply

		return nil
	})

	return supply, err
}

// GetReceipt returns one receipt from the audit trail.
func (s *ledgerService) GetReceipt(ctx context.Context, id uint64) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceipt(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return nil, domainerrors.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt")
	}

	return receipt, nil
}

// ListReceipts pages through the audit trail in id order.
func (s *ledgerService) ListReceipts(ctx context.Context, afterID uint64, limit int) ([]*entity.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceipts(ctx, afterID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	return receipts, nil
}

// requireMinter admits the administrator and any approved minter.
func (s *ledgerService) requireMinter(ctx context.Context, accounts repository.AccountRepository, caller usecase.Caller) error {
	if caller.HasRole(constants.RoleAdmin) {
		return nil
	}

	approved, err := accounts.IsMinter(ctx, caller.Address)
	if err != nil {
		return errors.Wrap(err, "failed to check minter approval")
	}
	if !approved {
		return domainerrors.ErrNotAuthorized.WithDetails("caller is neither administrator nor approved minter")
	}

	return nil
}

func (s *ledgerService) requireMintUnpaused(ctx context.Context, accounts repository.AccountRepository) error {
	state, err := accounts.LedgerState(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load ledger state")
	}
	if state.MintPaused {
		return domainerrors.ErrMintPaused
	}

	return nil
}

func (s *ledgerService) publish(ctx context.Context, event *service.MarketEvent) {
	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish ledger event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
