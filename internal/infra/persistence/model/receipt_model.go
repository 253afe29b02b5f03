package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptModel mirrors the 'receipts' table. IDs come from the table's
// bigserial sequence, which PostgreSQL advances even when the enclosing
// transaction later rolls back, so the numbering is strictly increasing
// with possible gaps.
type ReceiptModel struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Buyer     string          `gorm:"type:varchar(128);not null;index"`
	Seller    string          `gorm:"type:varchar(128);not null"`
	Reference string          `gorm:"type:varchar(512);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}
