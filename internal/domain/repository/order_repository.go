package repository

import (
	"context"

	"datadex/internal/domain/entity"
	"datadex/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderItem is returned when appending a key already in the basket.
	ErrDuplicateOrderItem = errors.New("order item already exists")
)

// OrderRepository persists order baskets and their item lists.
type OrderRepository interface {
	// CreateOrder stores a new order and fills its generated id.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrder retrieves an order with its items, in insertion order.
	FindOrder(ctx context.Context, id uint64) (*entity.Order, error)

	// FindOrderForUpdate retrieves an order with its items and locks the
	// order row for the remainder of the transaction.
	FindOrderForUpdate(ctx context.Context, id uint64) (*entity.Order, error)

	// FindActiveOrderByOwner returns the owner's ACTIVE order, or
	// ErrOrderNotFound when none exists.
	FindActiveOrderByOwner(ctx context.Context, owner entity.Address) (*entity.Order, error)

	// AppendItem appends key at the given position. Returns
	// ErrDuplicateOrderItem when the basket already holds the key.
	AppendItem(ctx context.Context, orderID uint64, key entity.ItemKey, position int) error

	// UpdateOrderStatus transitions the order to the given status.
	UpdateOrderStatus(ctx context.Context, id uint64, status entity.OrderStatus) error
}
