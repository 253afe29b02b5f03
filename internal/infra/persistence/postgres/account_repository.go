package postgres

import (
	"context"
	"time"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ledgerStateRow is the fixed primary key of the single ledger_state row.
const ledgerStateRow int16 = 1

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindAccount retrieves an account by address.
func (repo *accountRepository) FindAccount(ctx context.Context, addr entity.Address) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("address = ?", addr.String()).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// Credit adds amount to the account's balance, creating the row when absent.
func (repo *accountRepository) Credit(ctx context.Context, addr entity.Address, amount decimal.Decimal) error {
	accountM := model.AccountModel{
		Address: addr.String(),
		Balance: amount,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance":    gorm.Expr("accounts.balance + excluded.balance"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&accountM).Error
	if err != nil {
		return errors.Wrap(err, "failed to credit account")
	}

	return nil
}

// Debit subtracts amount from the account's balance after locking the row.
func (repo *accountRepository) Debit(ctx context.Context, addr entity.Address, amount decimal.Decimal) error {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", addr.String()).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrInsufficientBalance
		}

		return errors.Wrap(err, "failed to lock account")
	}

	if accountM.Balance.LessThan(amount) {
		return repository.ErrInsufficientBalance
	}

	err = repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("address = ?", addr.String()).
		Update("balance", accountM.Balance.Sub(amount)).Error
	if err != nil {
		return errors.Wrap(err, "failed to debit account")
	}

	return nil
}

// SetMinter flags or unflags an address as an approved minter.
func (repo *accountRepository) SetMinter(ctx context.Context, addr entity.Address, approved bool) error {
	accountM := model.AccountModel{
		Address:  addr.String(),
		Balance:  decimal.Zero,
		IsMinter: approved,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"is_minter":  approved,
				"updated_at": time.Now(),
			}),
		}).
		Create(&accountM).Error
	if err != nil {
		return errors.Wrap(err, "failed to set minter flag")
	}

	return nil
}

// IsMinter reports whether the address is an approved minter.
func (repo *accountRepository) IsMinter(ctx context.Context, addr entity.Address) (bool, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("address = ?", addr.String()).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check minter flag")
	}

	return accountM.IsMinter, nil
}

// LedgerState retrieves the global supply and mint-pause state, locking the
// row for the remainder of the transaction.
func (repo *accountRepository) LedgerState(ctx context.Context) (*entity.LedgerState, error) {
	var stateM model.LedgerStateModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", ledgerStateRow).
		First(&stateM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger state")
	}

	return &entity.LedgerState{
		TotalSupply: stateM.TotalSupply,
		MintPaused:  stateM.MintPaused,
		UpdatedAt:   stateM.UpdatedAt,
	}, nil
}

// AddSupply adjusts the total supply by delta (negative on burn).
func (repo *accountRepository) AddSupply(ctx context.Context, delta decimal.Decimal) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerStateModel{}).
		Where("id = ?", ledgerStateRow).
		Update("total_supply", gorm.Expr("total_supply + ?", delta)).Error
	if err != nil {
		return errors.Wrap(err, "failed to adjust total supply")
	}

	return nil
}

// SetMintPaused toggles the global mint pause flag.
func (repo *accountRepository) SetMintPaused(ctx context.Context, paused bool) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerStateModel{}).
		Where("id = ?", ledgerStateRow).
		Update("mint_paused", paused).Error
	if err != nil {
		return errors.Wrap(err, "failed to set mint pause")
	}

	return nil
}

// toAccountDomain maps the persistence model back to a pure domain entity.
func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		Address:   entity.Address(m.Address),
		Balance:   m.Balance,
		IsMinter:  m.IsMinter,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
