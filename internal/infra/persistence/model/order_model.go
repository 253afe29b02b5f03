package model

import "time"

// OrderModel mirrors the 'orders' table. A partial unique index created in
// the migration step enforces at most one ACTIVE order per owner.
type OrderModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Owner     string `gorm:"type:varchar(128);not null;index"`
	Status    string `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Position preserves
// basket insertion order; the composite primary key rejects duplicates.
type OrderItemModel struct {
	OrderID   uint64 `gorm:"primaryKey"`
	Store     string `gorm:"type:varchar(128);primaryKey"`
	Version   string `gorm:"type:varchar(256);primaryKey"`
	Position  int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
