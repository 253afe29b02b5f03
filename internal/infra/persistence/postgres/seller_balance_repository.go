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

// sellerBalanceRepository implements the domain.SellerBalanceRepository interface using GORM.
type sellerBalanceRepository struct {
	db *gorm.DB
}

// NewSellerBalanceRepository is the constructor for sellerBalanceRepository.
func NewSellerBalanceRepository(db *gorm.DB) repository.SellerBalanceRepository {
	return &sellerBalanceRepository{db: db}
}

// SellerBalance returns the owner's accrued proceeds, zero when the owner
// has never sold anything.
func (repo *sellerBalanceRepository) SellerBalance(ctx context.Context, owner entity.Address) (decimal.Decimal, error) {
	var balanceM model.SellerBalanceModel
	err := repo.db.WithContext(ctx).
		Where("owner = ?", owner.String()).
		First(&balanceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Zero, errors.Wrap(err, "failed to load seller balance")
	}

	return balanceM.Balance, nil
}

// Accrue adds amount to the owner's balance, creating the row when absent.
func (repo *sellerBalanceRepository) Accrue(ctx context.Context, owner entity.Address, amount decimal.Decimal) error {
	balanceM := model.SellerBalanceModel{
		Owner:   owner.String(),
		Balance: amount,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance":    gorm.Expr("seller_balances.balance + excluded.balance"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&balanceM).Error
	if err != nil {
		return errors.Wrap(err, "failed to accrue seller balance")
	}

	return nil
}

// Deduct subtracts amount from the owner's balance after locking the row.
func (repo *sellerBalanceRepository) Deduct(ctx context.Context, owner entity.Address, amount decimal.Decimal) error {
	var balanceM model.SellerBalanceModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner = ?", owner.String()).
		First(&balanceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrSellerBalanceInsufficient
		}

		return errors.Wrap(err, "failed to lock seller balance")
	}

	if balanceM.Balance.LessThan(amount) {
		return repository.ErrSellerBalanceInsufficient
	}

	err = repo.db.WithContext(ctx).
		Model(&model.SellerBalanceModel{}).
		Where("owner = ?", owner.String()).
		Update("balance", balanceM.Balance.Sub(amount)).Error
	if err != nil {
		return errors.Wrap(err, "failed to deduct seller balance")
	}

	return nil
}
