package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BurnRequest records value removed from the ledger pending re-mint on
// another network. The detail hash binds id, burner, amount and annotation
// so the bridge can verify the re-mint parameters.
type BurnRequest struct {
	ID         uint64          `json:"id"`
	Burner     Address         `json:"burner"`
	Amount     decimal.Decimal `json:"amount"`
	Annotation string          `json:"annotation"`
	DetailHash string          `json:"detail_hash"`
	Reminted   bool            `json:"reminted"`
	CreatedAt  time.Time       `json:"created_at"`
}
