package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// ErrReceiptNotFound is returned when a receipt id does not exist.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptRepository is the append-only audit trail of notified transfers.
type ReceiptRepository interface {
	// Append stores a new receipt and fills its generated id and timestamp.
	// Ids come from a strictly increasing sequence and are never reused.
	Append(ctx context.Context, receipt *entity.Receipt) error

	// FindReceipt retrieves a receipt by id.
	FindReceipt(ctx context.Context, id uint64) (*entity.Receipt, error)

	// ListReceipts returns up to limit receipts with id greater than afterID,
	// ordered by id.
	ListReceipts(ctx context.Context, afterID uint64, limit int) ([]*entity.Receipt, error)
}
