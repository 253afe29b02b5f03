package postgres

import (
	"context"
	"time"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// exchangeRateRow is the fixed primary key of the single exchange_rates row.
const exchangeRateRow int16 = 1

// registryRepository implements the domain.RegistryRepository interface using GORM.
type registryRepository struct {
	db *gorm.DB
}

// NewRegistryRepository is the constructor for registryRepository.
func NewRegistryRepository(db *gorm.DB) repository.RegistryRepository {
	return &registryRepository{db: db}
}

// FindSplit retrieves the percentage for a slot.
func (repo *registryRepository) FindSplit(ctx context.Context, slot int) (*entity.RevenueSplit, error) {
	var splitM model.RevenueSplitModel
	err := repo.db.WithContext(ctx).
		Where("slot = ?", slot).
		First(&splitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSplitSlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find split slot")
	}

	return &entity.RevenueSplit{
		Slot:       splitM.Slot,
		Percentage: splitM.Percentage,
		UpdatedAt:  splitM.UpdatedAt,
	}, nil
}

// SaveSplit updates the percentage for a slot.
func (repo *registryRepository) SaveSplit(ctx context.Context, slot int, percentage int) error {
	splitM := model.RevenueSplitModel{
		Slot:       slot,
		Percentage: percentage,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot"}},
			DoUpdates: clause.Assignments(map[string]any{
				"percentage": percentage,
				"updated_at": time.Now(),
			}),
		}).
		Create(&splitM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save split slot")
	}

	return nil
}

// FindRate retrieves the current exchange rate.
func (repo *registryRepository) FindRate(ctx context.Context) (*entity.ExchangeRate, error) {
	var rateM model.ExchangeRateModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", exchangeRateRow).
		First(&rateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find exchange rate")
	}

	return &entity.ExchangeRate{
		Rate:      rateM.Rate,
		UpdatedAt: rateM.UpdatedAt,
	}, nil
}

// SaveRate updates the exchange rate.
func (repo *registryRepository) SaveRate(ctx context.Context, rate int64) error {
	rateM := model.ExchangeRateModel{
		ID:   exchangeRateRow,
		Rate: rate,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rate":       rate,
				"updated_at": time.Now(),
			}),
		}).
		Create(&rateM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save exchange rate")
	}

	return nil
}
