package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupProp_MapShapes(t *testing.T) {
	t.Run("float map", func(t *testing.T) {
		v, ok := LookupProp(map[string]float64{"width": 0.3}, "width")
		assert.True(t, ok)
		assert.Equal(t, 0.3, v)
	})

	t.Run("any map with json numbers", func(t *testing.T) {
		props := map[string]any{"width": 0.3, "count": 4}
		v, ok := LookupProp(props, "width")
		assert.True(t, ok)
		assert.Equal(t, 0.3, v)

		v, ok = LookupProp(props, "count")
		assert.True(t, ok)
		assert.Equal(t, 4.0, v)
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, ok := LookupProp(map[string]any{"shape": "circular"}, "shape")
		assert.False(t, ok)
	})

	t.Run("nil properties", func(t *testing.T) {
		_, ok := LookupProp(nil, "width")
		assert.False(t, ok)
	})
}

func TestLookupProp_LegacyRecord(t *testing.T) {
	type beamProps struct {
		Width  float64
		Height float64
		Count  int
	}
	props := beamProps{Width: 0.3, Height: 0.5, Count: 4}

	v, ok := LookupProp(props, "width")
	assert.True(t, ok)
	assert.Equal(t, 0.3, v)

	// field match is case-insensitive
	v, ok = LookupProp(&props, "HEIGHT")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = LookupProp(props, "count")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = LookupProp(props, "missing")
	assert.False(t, ok)

	_, ok = LookupProp((*beamProps)(nil), "width")
	assert.False(t, ok)
}

func TestGetProp_Default(t *testing.T) {
	assert.Equal(t, 0.25, GetProp(map[string]float64{}, "depth", 0.25))
	assert.Equal(t, 0.4, GetProp(map[string]float64{"depth": 0.4}, "depth", 0.25))
}

func TestLookupPropString(t *testing.T) {
	s, ok := LookupPropString(map[string]any{"shape": "circular"}, "shape")
	assert.True(t, ok)
	assert.Equal(t, "circular", s)

	s, ok = LookupPropString(map[string]string{"shape": "rectangular"}, "shape")
	assert.True(t, ok)
	assert.Equal(t, "rectangular", s)

	type legacy struct{ Shape string }
	s, ok = LookupPropString(legacy{Shape: "circular"}, "shape")
	assert.True(t, ok)
	assert.Equal(t, "circular", s)

	_, ok = LookupPropString(map[string]any{"shape": 1}, "shape")
	assert.False(t, ok)
}
