package takeoff

import (
	"testing"

	"kantidad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleTakeoff(t *testing.T) {
	finishes := []entities.FinishSchedule{
		{ID: "fin-1", Name: "Lobby Walls", Quantity: 86.4, Unit: "sq.m", DPWHItem: "1027(1)"},
		{ID: "fin-2", Name: "Toilet Floors", Quantity: 12.5, Unit: "sq.m"},
	}
	roofs := []entities.RoofPlane{
		{ID: "roof-1", Name: "Main Roof", Area: 120.0, DPWHItem: "1014(1)b"},
	}

	lines := ScheduleTakeoff(finishes, roofs)
	require.Len(t, lines, 3)

	lobby := lines[0]
	assert.Equal(t, "tof_fin-1_finish", lobby.ID)
	assert.Equal(t, entities.TradeFinishes, lobby.Trade)
	assert.Equal(t, 86.4, lobby.Quantity)
	assert.Equal(t, lobby.Quantity, lobby.RawQuantity)
	assert.Contains(t, lobby.Tags, "category:finishes")
	assert.Contains(t, lobby.Tags, "space:Lobby Walls")
	assert.Contains(t, lobby.Tags, "dpwh:1027(1)")

	// no assigned item: no dpwh: tag, the aggregator decides what to do
	toilet := lines[1]
	for _, tag := range toilet.Tags {
		assert.NotContains(t, tag, "dpwh:")
	}

	roof := lines[2]
	assert.Equal(t, "tof_roof-1_roofing", roof.ID)
	assert.Equal(t, entities.TradeRoofing, roof.Trade)
	assert.Equal(t, "sq.m", roof.Unit)
	assert.Contains(t, roof.Tags, "roofPlane:Main Roof")
	assert.Contains(t, roof.Tags, "dpwh:1014(1)b")
}

func TestScheduleTakeoff_Empty(t *testing.T) {
	assert.Empty(t, ScheduleTakeoff(nil, nil))
}
