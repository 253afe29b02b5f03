package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemModel mirrors the 'items' table. One row per (store, version) pair.
type ItemModel struct {
	Store        string          `gorm:"type:varchar(128);primaryKey"`
	Version      string          `gorm:"type:varchar(256);primaryKey"`
	Price        decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	OnSale       bool            `gorm:"not null;default:false"`
	OraclePriced bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// PurchaseModel mirrors the 'purchases' table. The composite primary key
// makes double-purchase a unique constraint violation at the database
// level, on top of the service-level check.
type PurchaseModel struct {
	Buyer     string `gorm:"type:varchar(128);primaryKey"`
	Store     string `gorm:"type:varchar(128);primaryKey"`
	Version   string `gorm:"type:varchar(256);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// SellerBalanceModel mirrors the 'seller_balances' table of withdrawable
// proceeds accrued per store owner.
type SellerBalanceModel struct {
	Owner     string          `gorm:"type:varchar(128);primaryKey"`
	Balance   decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerBalanceModel) TableName() string {
	return "seller_balances"
}
