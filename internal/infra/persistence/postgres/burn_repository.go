package postgres

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// burnRepository implements the domain.BurnRepository interface using GORM.
type burnRepository struct {
	db *gorm.DB
}

// NewBurnRepository is the constructor for burnRepository.
func NewBurnRepository(db *gorm.DB) repository.BurnRepository {
	return &burnRepository{db: db}
}

// CreateBurn stores a burn request and fills its generated id.
func (repo *burnRepository) CreateBurn(ctx context.Context, burn *entity.BurnRequest) error {
	burnM := model.BurnRequestModel{
		Burner:     burn.Burner.String(),
		Amount:     burn.Amount,
		Annotation: burn.Annotation,
	}

	if err := repo.db.WithContext(ctx).Create(&burnM).Error; err != nil {
		return errors.Wrap(err, "failed to create burn request")
	}

	burn.ID = burnM.ID
	burn.CreatedAt = burnM.CreatedAt

	return nil
}

// SaveDetailHash stores the detail hash computed from the generated id.
func (repo *burnRepository) SaveDetailHash(ctx context.Context, id uint64, hash string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.BurnRequestModel{}).
		Where("id = ?", id).
		Update("detail_hash", hash).Error
	if err != nil {
		return errors.Wrap(err, "failed to save burn detail hash")
	}

	return nil
}

// FindBurnForUpdate retrieves a burn request and locks its row.
func (repo *burnRepository) FindBurnForUpdate(ctx context.Context, id uint64) (*entity.BurnRequest, error) {
	var burnM model.BurnRequestModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&burnM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBurnNotFound
		}

		return nil, errors.Wrap(err, "failed to find burn request")
	}

	return toBurnDomain(&burnM), nil
}

// MarkReminted flags a burn request as consumed by a bridge mint.
func (repo *burnRepository) MarkReminted(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BurnRequestModel{}).
		Where("id = ? AND reminted = false", id).
		Update("reminted", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark burn reminted")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBurnAlreadyReminted
	}

	return nil
}

// toBurnDomain maps the persistence model back to a pure domain entity.
func toBurnDomain(m *model.BurnRequestModel) *entity.BurnRequest {
	return &entity.BurnRequest{
		ID:         m.ID,
		Burner:     entity.Address(m.Burner),
		Amount:     m.Amount,
		Annotation: m.Annotation,
		DetailHash: m.DetailHash,
		Reminted:   m.Reminted,
		CreatedAt:  m.CreatedAt,
	}
}
