package model

import "time"

// RevenueSplitModel mirrors the 'revenue_splits' table. One row per slot,
// seeded with the default percentages on first migration.
type RevenueSplitModel struct {
	Slot       int `gorm:"primaryKey"`
	Percentage int `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RevenueSplitModel) TableName() string {
	return "revenue_splits"
}

// ExchangeRateModel mirrors the single-row 'exchange_rates' table.
type ExchangeRateModel struct {
	ID        int16 `gorm:"primaryKey"`
	Rate      int64 `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}
