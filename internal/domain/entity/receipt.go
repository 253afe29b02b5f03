package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is an immutable audit record of a completed notified transfer.
// IDs come from a process-wide strictly increasing sequence and are never
// reused, even when the surrounding transaction later rolled back and left
// a gap in the numbering.
type Receipt struct {
	ID        uint64          `json:"id"`
	Buyer     Address         `json:"buyer"`
	Seller    Address         `json:"seller"`    // The settlement component that received the transfer.
	Reference string          `json:"reference"` // Item key or order id, opaque to the ledger.
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
