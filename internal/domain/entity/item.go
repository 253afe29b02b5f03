package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"datadex/internal/errors"
)

// itemKeySeparator joins the store address and version tag in the string
// form of an item key. Versions may not contain it.
const itemKeySeparator = ":"

// ItemKey identifies a sellable item: one version of one data store.
// It is a proper product type; equality and map usage work structurally
// instead of relying on byte-level concatenation.
type ItemKey struct {
	Store   Address `json:"store"`
	Version string  `json:"version"`
}

// NewItemKey builds a normalized item key.
func NewItemKey(store Address, version string) ItemKey {
	return ItemKey{Store: NormalizeAddress(store.String()), Version: strings.TrimSpace(version)}
}

// ParseItemKey parses the "store:version" string form used as a transfer
// reference id.
func ParseItemKey(raw string) (ItemKey, error) {
	store, version, ok := strings.Cut(raw, itemKeySeparator)
	if !ok || store == "" || version == "" {
		return ItemKey{}, errors.Errorf("malformed item key %q", raw)
	}

	return NewItemKey(Address(store), version), nil
}

// IsZero reports whether the key is unset.
func (k ItemKey) IsZero() bool {
	return k.Store.IsZero() && k.Version == ""
}

func (k ItemKey) String() string {
	return k.Store.String() + itemKeySeparator + k.Version
}

// Item is one priced version of a data store. Items come into existence on
// the first SetPrice call by the store owner; the sale flag defaults to off.
type Item struct {
	Key          ItemKey         `json:"key"`
	Price        decimal.Decimal `json:"price"`
	OnSale       bool            `json:"on_sale"`
	OraclePriced bool            `json:"oracle_priced"` // Price is a fiat base price converted via the exchange rate.
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
