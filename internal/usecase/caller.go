// Package usecase defines the application-facing interfaces of the
// settlement engine.
package usecase

import (
	"slices"

	"datadex/internal/domain/entity"
)

// Caller is the authenticated identity performing an operation: a ledger
// address plus the roles carried by its access token.
type Caller struct {
	Address entity.Address
	Roles   []string
}

// HasRole reports whether the caller carries the given role.
func (c Caller) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}
