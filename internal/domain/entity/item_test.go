package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ItemKey
		wantErr bool
	}{
		{"valid key", "store-1:v1", ItemKey{Store: "store-1", Version: "v1"}, false},
		{"normalizes store case", "Store-1:v1", ItemKey{Store: "store-1", Version: "v1"}, false},
		{"version keeps inner colon text", "store-1:2024-06", ItemKey{Store: "store-1", Version: "2024-06"}, false},
		{"missing separator", "store-1", ItemKey{}, true},
		{"empty store", ":v1", ItemKey{}, true},
		{"empty version", "store-1:", ItemKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseItemKey(tt.raw)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestItemKey_StringRoundTrip(t *testing.T) {
	key := NewItemKey("store-1", "v2")

	parsed, err := ParseItemKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestItemKey_IsZero(t *testing.T) {
	assert.True(t, ItemKey{}.IsZero())
	assert.False(t, NewItemKey("store-1", "v1").IsZero())
}
