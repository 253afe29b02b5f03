package entity

import "time"

// Store is the marketplace's view of a registered data store. The store's
// own metadata (location pointers, signatures) lives outside this service;
// only the ownership and fee-routing facts needed for settlement are kept.
type Store struct {
	Address   Address   `json:"address"`
	Owner     Address   `json:"owner"`    // Receives the seller share of every sale.
	Location  Address   `json:"location"` // Facilitator address credited with the facilitator share.
	CreatedAt time.Time `json:"created_at"`
}
