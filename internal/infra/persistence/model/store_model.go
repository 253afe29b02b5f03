package model

import "time"

// StoreModel mirrors the 'stores' table of registered data stores.
type StoreModel struct {
	Address   string `gorm:"type:varchar(128);primaryKey"`
	Owner     string `gorm:"type:varchar(128);not null;index"`
	Location  string `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
