package takeoff

import (
	"errors"
	"testing"

	"kantidad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevels() *LevelResolver {
	// deliberately unsorted: the resolver sorts by elevation
	return NewLevelResolver([]entities.Level{
		{Label: "L2", Elevation: 3.0},
		{Label: "GF", Elevation: 0.0},
		{Label: "RF", Elevation: 6.5},
	})
}

func TestLevelResolver_NextAbove(t *testing.T) {
	r := testLevels()

	next, ok := r.NextAbove("GF")
	require.True(t, ok)
	assert.Equal(t, "L2", next.Label)

	next, ok = r.NextAbove("L2")
	require.True(t, ok)
	assert.Equal(t, "RF", next.Label)

	_, ok = r.NextAbove("RF")
	assert.False(t, ok)

	_, ok = r.NextAbove("missing")
	assert.False(t, ok)
}

func TestLevelResolver_IsTopmost(t *testing.T) {
	r := testLevels()
	assert.True(t, r.IsTopmost("RF"))
	assert.False(t, r.IsTopmost("GF"))
	assert.False(t, r.IsTopmost("missing"))
}

func TestLevelResolver_HeightBetween(t *testing.T) {
	r := testLevels()
	gf, _ := r.ByLabel("GF")
	l2, _ := r.ByLabel("L2")

	h, err := r.HeightBetween(gf, l2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, h)

	_, err = r.HeightBetween(l2, gf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHeight))

	_, err = r.HeightBetween(gf, gf)
	require.Error(t, err)
}
