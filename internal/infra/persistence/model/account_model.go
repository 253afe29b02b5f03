// Package model holds the GORM persistence models mirroring the database
// tables. They stay separate from the domain entities so schema concerns
// never leak upward.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountModel mirrors the 'accounts' table. The address is the primary
// key; balances are numeric(38,18) so token amounts never lose precision.
type AccountModel struct {
	Address   string          `gorm:"type:varchar(128);primaryKey"`
	Balance   decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	IsMinter  bool            `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// LedgerStateModel mirrors the single-row 'ledger_state' table holding the
// total supply and the global mint pause flag.
type LedgerStateModel struct {
	ID          int16           `gorm:"primaryKey"`
	TotalSupply decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	MintPaused  bool            `gorm:"not null;default:false"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LedgerStateModel) TableName() string {
	return "ledger_state"
}
