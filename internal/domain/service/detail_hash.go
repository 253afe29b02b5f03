package service

import (
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"

	"datadex/internal/domain/entity"
)

// BurnDetailHash derives the hash binding a burn request's parameters.
// The bridge recomputes it before re-minting, so the encoding must stay
// stable across versions.
func BurnDetailHash(id uint64, burner entity.Address, amount decimal.Decimal, annotation string) string {
	h := sha3.New256()
	fmt.Fprintf(h, "%d|%s|%s|%s", id, burner, amount.String(), annotation)

	return hex.EncodeToString(h.Sum(nil))
}
