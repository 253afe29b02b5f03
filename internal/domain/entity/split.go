package entity

import "time"

// RevenueSplit is one adjustable percentage slot of the revenue-split
// registry. Values are whole percentages in [0, 100].
type RevenueSplit struct {
	Slot       int       `json:"slot"`
	Percentage int       `json:"percentage"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExchangeRate is the admin-set token-per-fiat-unit rate consumed by
// oracle-priced items.
type ExchangeRate struct {
	Rate      int64     `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
}
