package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Address
	}{
		{"lowercases", "0xABCDef", "0xabcdef"},
		{"trims whitespace", "  alice \n", "alice"},
		{"empty stays zero", "", ZeroAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.raw))
		})
	}
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())
	assert.False(t, NormalizeAddress("alice").IsZero())
}
