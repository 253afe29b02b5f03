package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BurnRequestModel mirrors the 'burn_requests' table. The detail hash is
// filled in a second write because it is derived from the generated id.
type BurnRequestModel struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	Burner     string          `gorm:"type:varchar(128);not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	Annotation string          `gorm:"type:text"`
	DetailHash string          `gorm:"type:varchar(128)"`
	Reminted   bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BurnRequestModel) TableName() string {
	return "burn_requests"
}
