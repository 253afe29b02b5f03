// Package entity contains the core business objects of the project.
package entity

import "strings"

// Address is a ledger account identity. It is treated as an opaque,
// case-insensitive identifier; the ledger never interprets its content.
type Address string

// ZeroAddress is the absent address value.
const ZeroAddress Address = ""

// NormalizeAddress lowercases and trims an address so that lookups are
// stable regardless of how the caller typed it.
func NormalizeAddress(raw string) Address {
	return Address(strings.ToLower(strings.TrimSpace(raw)))
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}
