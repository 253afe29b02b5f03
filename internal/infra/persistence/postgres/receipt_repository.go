package postgres

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/domain/repository"
	"datadex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// defaultReceiptPageSize caps the page when the caller passes no limit.
const defaultReceiptPageSize = 100

// receiptRepository implements the domain.ReceiptRepository interface using GORM.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Append stores a receipt and fills its sequence-generated id.
func (repo *receiptRepository) Append(ctx context.Context, receipt *entity.Receipt) error {
	receiptM := model.ReceiptModel{
		Buyer:     receipt.Buyer.String(),
		Seller:    receipt.Seller.String(),
		Reference: receipt.Reference,
		Amount:    receipt.Amount,
	}

	if err := repo.db.WithContext(ctx).Create(&receiptM).Error; err != nil {
		return errors.Wrap(err, "failed to append receipt")
	}

	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}

// FindReceipt retrieves one receipt by id.
func (repo *receiptRepository) FindReceipt(ctx context.Context, id uint64) (*entity.Receipt, error) {
	var receiptM model.ReceiptModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&receiptM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt")
	}

	return toReceiptDomain(&receiptM), nil
}

// ListReceipts pages through the audit trail in ascending id order.
func (repo *receiptRepository) ListReceipts(ctx context.Context, afterID uint64, limit int) ([]*entity.Receipt, error) {
	if limit <= 0 {
		limit = defaultReceiptPageSize
	}

	var receiptMs []model.ReceiptModel
	err := repo.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&receiptMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	receipts := make([]*entity.Receipt, 0, len(receiptMs))
	for i := range receiptMs {
		receipts = append(receipts, toReceiptDomain(&receiptMs[i]))
	}

	return receipts, nil
}

// toReceiptDomain maps the persistence model back to a pure domain entity.
func toReceiptDomain(m *model.ReceiptModel) *entity.Receipt {
	return &entity.Receipt{
		ID:        m.ID,
		Buyer:     entity.Address(m.Buyer),
		Seller:    entity.Address(m.Seller),
		Reference: m.Reference,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}
