package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The audit trail's ordering guarantee rests on the receipts table handing
// out ids from its own sequence: ids strictly increase (gaps allowed) and
// are never assigned by application code.
func TestReceiptModel_IDComesFromTableSequence(t *testing.T) {
	parsed, err := schema.Parse(&ReceiptModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "receipts", parsed.Table)

	field := parsed.LookUpField("ID")
	require.NotNil(t, field)
	assert.True(t, field.PrimaryKey)
	assert.True(t, field.AutoIncrement)

	// No other field may claim the primary key, or pagination by id would
	// stop being a total order.
	assert.Equal(t, []*schema.Field{field}, parsed.PrimaryFields)
}
