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

// itemRepository implements the domain.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// FindItem retrieves an item by its (store, version) key.
func (repo *itemRepository) FindItem(ctx context.Context, key entity.ItemKey) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Where("store = ? AND version = ?", key.Store.String(), key.Version).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return toItemDomain(&itemM), nil
}

// FindItemForUpdate retrieves an item and locks its row.
func (repo *itemRepository) FindItemForUpdate(ctx context.Context, key entity.ItemKey) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store = ? AND version = ?", key.Store.String(), key.Version).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to lock item")
	}

	return toItemDomain(&itemM), nil
}

// UpsertItem creates or updates an item's price and flags.
func (repo *itemRepository) UpsertItem(ctx context.Context, item *entity.Item) error {
	itemM := model.ItemModel{
		Store:        item.Key.Store.String(),
		Version:      item.Key.Version,
		Price:        item.Price,
		OnSale:       item.OnSale,
		OraclePriced: item.OraclePriced,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store"}, {Name: "version"}},
			DoUpdates: clause.Assignments(map[string]any{
				"price":         item.Price,
				"on_sale":       item.OnSale,
				"oracle_priced": item.OraclePriced,
				"updated_at":    time.Now(),
			}),
		}).
		Create(&itemM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// HasPurchase reports whether the buyer already holds purchase rights.
func (repo *itemRepository) HasPurchase(ctx context.Context, buyer entity.Address, key entity.ItemKey) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("buyer = ? AND store = ? AND version = ?", buyer.String(), key.Store.String(), key.Version).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check purchase")
	}

	return count > 0, nil
}

// RecordPurchase grants the buyer purchase rights for the item. The
// composite primary key turns a replay into ErrDuplicatePurchase.
func (repo *itemRepository) RecordPurchase(ctx context.Context, buyer entity.Address, key entity.ItemKey) error {
	purchaseM := model.PurchaseModel{
		Buyer:   buyer.String(),
		Store:   key.Store.String(),
		Version: key.Version,
	}

	if err := repo.db.WithContext(ctx).Create(&purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}

		return errors.Wrap(err, "failed to record purchase")
	}

	return nil
}

// toItemDomain maps the persistence model back to a pure domain entity.
func toItemDomain(m *model.ItemModel) *entity.Item {
	return &entity.Item{
		Key:          entity.ItemKey{Store: entity.Address(m.Store), Version: m.Version},
		Price:        m.Price,
		OnSale:       m.OnSale,
		OraclePriced: m.OraclePriced,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
