package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"datadex/internal/domain/entity"
)

func TestBurnDetailHash_Deterministic(t *testing.T) {
	burner := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(50)

	first := BurnDetailHash(42, burner, amount, "cash out")
	second := BurnDetailHash(42, burner, amount, "cash out")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded sha3-256
}

func TestBurnDetailHash_SensitiveToEveryParameter(t *testing.T) {
	burner := entity.NormalizeAddress("alice")
	amount := decimal.NewFromInt(50)
	base := BurnDetailHash(42, burner, amount, "cash out")

	assert.NotEqual(t, base, BurnDetailHash(43, burner, amount, "cash out"))
	assert.NotEqual(t, base, BurnDetailHash(42, entity.NormalizeAddress("bob"), amount, "cash out"))
	assert.NotEqual(t, base, BurnDetailHash(42, burner, decimal.NewFromInt(51), "cash out"))
	assert.NotEqual(t, base, BurnDetailHash(42, burner, amount, "other"))
}
