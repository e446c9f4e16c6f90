package catalog

import (
	"testing"

	"kantidad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog_Lookup(t *testing.T) {
	c := NewDefault()

	item, ok := c.Lookup("405(1)a")
	require.True(t, ok)
	assert.Equal(t, "cu.m", item.Unit)
	assert.Equal(t, entities.TradeConcrete, item.Trade)

	// lookups tolerate surrounding whitespace
	_, ok = c.Lookup("  404(1)b  ")
	assert.True(t, ok)

	_, ok = c.Lookup("999(9)")
	assert.False(t, ok)
}

func TestStaticCatalog_Custom(t *testing.T) {
	c := New([]entities.PayItem{
		{ItemNumber: "custom(1)", Description: "Custom Item", Unit: "sq.m", Trade: entities.TradeFinishes},
	})

	item, ok := c.Lookup("custom(1)")
	require.True(t, ok)
	assert.Equal(t, "Custom Item", item.Description)

	// custom catalogs do not inherit the default table
	_, ok = c.Lookup("405(1)a")
	assert.False(t, ok)
}
