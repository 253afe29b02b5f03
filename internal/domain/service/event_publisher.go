package service

import (
	"context"
)

// MarketEvent is an audit event emitted after a committed state change.
// Type is one of the constants.Event* values; only the fields relevant to
// that type are set.
type MarketEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"` // For distributed tracing

	Buyer     string `json:"buyer,omitempty"`
	Seller    string `json:"seller,omitempty"`
	Store     string `json:"store,omitempty"`
	Version   string `json:"version,omitempty"`
	OrderID   uint64 `json:"order_id,omitempty"`
	ReceiptID uint64 `json:"receipt_id,omitempty"`
	BurnID    uint64 `json:"burn_id,omitempty"`
	Reference string `json:"reference,omitempty"`

	Amount           string `json:"amount,omitempty"`
	SellerShare      string `json:"seller_share,omitempty"`
	PlatformShare    string `json:"platform_share,omitempty"`
	FacilitatorShare string `json:"facilitator_share,omitempty"`

	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`

	By         string `json:"by,omitempty"`
	Annotation string `json:"annotation,omitempty"`
	DetailHash string `json:"detail_hash,omitempty"`
}

// EventPublisher defines the interface for publishing audit events to a
// message queue.
type EventPublisher interface {
	// PublishMarketEvent publishes one audit event for async consumers.
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
