package entity

import "time"

// OrderStatus is the lifecycle state of an order basket.
type OrderStatus string

// Order lifecycle: ACTIVE until cancelled or purchased, both terminal.
const (
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusPurchased OrderStatus = "PURCHASED"
)

// Order is a buyer-owned basket of item keys purchased together with a
// single notified transfer. An address holds at most one ACTIVE order.
type Order struct {
	ID        uint64      `json:"id"`
	Owner     Address     `json:"owner"`
	Status    OrderStatus `json:"status"`
	Items     []ItemKey   `json:"items"` // Insertion order preserved; no duplicates.
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Contains reports whether the basket already holds the given key.
func (o *Order) Contains(key ItemKey) bool {
	for _, k := range o.Items {
		if k == key {
			return true
		}
	}

	return false
}

// IsActive reports whether the order can still be modified.
func (o *Order) IsActive() bool {
	return o.Status == OrderStatusActive
}
