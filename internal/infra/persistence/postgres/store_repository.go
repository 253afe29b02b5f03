package postgres

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// CreateStore registers a store with its owner and facilitator addresses.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := model.StoreModel{
		Address:  store.Address.String(),
		Owner:    store.Owner.String(),
		Location: store.Location.String(),
	}

	if err := repo.db.WithContext(ctx).Create(&storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}

		return errors.Wrap(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt

	return nil
}

// FindStore retrieves a store by address.
func (repo *storeRepository) FindStore(ctx context.Context, addr entity.Address) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("address = ?", addr.String()).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return &entity.Store{
		Address:   entity.Address(storeM.Address),
		Owner:     entity.Address(storeM.Owner),
		Location:  entity.Address(storeM.Location),
		CreatedAt: storeM.CreatedAt,
	}, nil
}
