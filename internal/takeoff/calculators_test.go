package takeoff

import (
	"testing"

	"kantidad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 0.945, RoundTo(0.94500000001, 3), 1e-12)
	assert.InDelta(t, 7.8, RoundTo(7.8, 2), 1e-12)
	// half rounds away from zero
	assert.InDelta(t, 0.13, RoundTo(0.125, 2), 1e-12)
	assert.InDelta(t, -0.13, RoundTo(-0.125, 2), 1e-12)
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 31, CeilDiv(6, 0.2))
	assert.Equal(t, 21, CeilDiv(5, 0.25))
	assert.Equal(t, 22, CeilDiv(5.1, 0.25))
}

func TestConcreteVolumeBeam(t *testing.T) {
	g := BeamGeometry{Width: 0.30, Height: 0.50, Length: 6.0}
	r := ConcreteVolumeBeam(g, 0.05, 3)

	assert.InDelta(t, 0.945, r.Value, 1e-9)
	assert.InDelta(t, 0.945, r.Raw, 1e-9)
	assert.Contains(t, r.Formula, "waste")
	assert.Equal(t, 0.05, r.Inputs["waste"])
	assert.Equal(t, 6.0, r.Inputs["length"])
}

func TestFormworkAreaBeam_NoWaste(t *testing.T) {
	g := BeamGeometry{Width: 0.30, Height: 0.50, Length: 6.0}
	r := FormworkAreaBeam(g, 2)

	// bottom 0.30×6 plus two sides 0.50×6; no waste factor ever
	assert.InDelta(t, 7.80, r.Value, 1e-9)
	assert.InDelta(t, 7.80, r.Raw, 1e-9)
	assert.NotContains(t, r.Formula, "waste")
}

func TestConcreteVolumeColumn(t *testing.T) {
	t.Run("rectangular", func(t *testing.T) {
		g := ColumnGeometry{Shape: ShapeRectangular, Width: 0.4, Depth: 0.4, Height: 3.0}
		r := ConcreteVolumeColumn(g, 0.05, 3)
		assert.InDelta(t, 0.504, r.Value, 1e-9)
	})

	t.Run("circular", func(t *testing.T) {
		g := ColumnGeometry{Shape: ShapeCircular, Diameter: 0.5, Height: 3.0}
		r := ConcreteVolumeColumn(g, 0, 3)
		// π × 0.25 / 4 × 3 = 0.58904...
		assert.InDelta(t, 0.589, r.Value, 1e-9)
	})
}

func TestFormworkAreaColumn(t *testing.T) {
	rect := FormworkAreaColumn(ColumnGeometry{Shape: ShapeRectangular, Width: 0.4, Depth: 0.3, Height: 3.0}, 2)
	assert.InDelta(t, 4.20, rect.Value, 1e-9)

	circ := FormworkAreaColumn(ColumnGeometry{Shape: ShapeCircular, Diameter: 0.5, Height: 3.0}, 2)
	// π × 0.5 × 3 = 4.712...
	assert.InDelta(t, 4.71, circ.Value, 1e-9)
}

func TestConcreteVolumeSlab(t *testing.T) {
	g := SlabGeometry{Thickness: 0.12, XLength: 6.0, YLength: 8.0}
	r := ConcreteVolumeSlab(g, 0.05, 3)
	assert.InDelta(t, 6.048, r.Value, 1e-9)
}

func TestFormworkAreaSlab_SoffitOnly(t *testing.T) {
	g := SlabGeometry{Thickness: 0.12, XLength: 6.0, YLength: 8.0}
	r := FormworkAreaSlab(g, 2)
	assert.InDelta(t, 48.00, r.Value, 1e-9)
}

func TestConcreteVolumeFoundation(t *testing.T) {
	t.Run("isolated footing", func(t *testing.T) {
		g := FoundationGeometry{Mode: FoundationIsolated, Length: 1.5, Width: 1.5, Depth: 0.5}
		r := ConcreteVolumeFoundation(g, 0.05, 3)
		assert.InDelta(t, 1.181, r.Value, 1e-9)
	})

	t.Run("mat delegates to slab", func(t *testing.T) {
		g := FoundationGeometry{Mode: FoundationMat, Thickness: 0.3, XLength: 6.0, YLength: 8.0}
		r := ConcreteVolumeFoundation(g, 0, 3)
		assert.InDelta(t, 14.4, r.Value, 1e-9)
	})
}

func TestFormworkAreaFoundation(t *testing.T) {
	iso := FormworkAreaFoundation(FoundationGeometry{Mode: FoundationIsolated, Length: 1.5, Width: 1.5, Depth: 0.6}, 2)
	assert.InDelta(t, 3.60, iso.Value, 1e-9)

	mat := FormworkAreaFoundation(FoundationGeometry{Mode: FoundationMat, Thickness: 0.3, XLength: 6.0, YLength: 8.0}, 2)
	assert.InDelta(t, 8.40, mat.Value, 1e-9)
}

func TestUnitWeightPerMeter(t *testing.T) {
	assert.InDelta(t, 1.57952, UnitWeightPerMeter(16), 1e-9)
	assert.InDelta(t, 0.88848, UnitWeightPerMeter(12), 1e-9)
}

func TestRebarGradeAndItem(t *testing.T) {
	assert.Equal(t, "Grade 40", RebarGrade(12))
	assert.Equal(t, "Grade 60", RebarGrade(16))
	assert.Equal(t, "404(1)a", DPWHRebarItem(10))
	assert.Equal(t, "404(1)b", DPWHRebarItem(20))
}

func TestRebarWeight(t *testing.T) {
	t.Run("explicit count", func(t *testing.T) {
		group := entities.BarGroup{DiameterMM: 16, Count: 4}
		r, err := RebarWeight(group, 6.0, 0, 0.03, 2)
		require.NoError(t, err)
		// 4 × 6 × 1.57952 × 1.03 = 39.0457
		assert.InDelta(t, 39.05, r.Value, 1e-9)
		assert.Equal(t, 4.0, r.Inputs["count"])
	})

	t.Run("count derived from spacing", func(t *testing.T) {
		group := entities.BarGroup{DiameterMM: 10, SpacingM: 0.2}
		r, err := RebarWeight(group, 6.0, 6.0, 0, 2)
		require.NoError(t, err)
		// ⌈6/0.2⌉+1 = 31 bars
		assert.Equal(t, 31.0, r.Inputs["count"])
	})

	t.Run("missing diameter", func(t *testing.T) {
		_, err := RebarWeight(entities.BarGroup{Count: 4}, 6.0, 0, 0, 2)
		require.Error(t, err)
	})

	t.Run("missing bar length", func(t *testing.T) {
		_, err := RebarWeight(entities.BarGroup{DiameterMM: 16, Count: 4}, 0, 0, 0, 2)
		require.Error(t, err)
	})

	t.Run("neither count nor spacing", func(t *testing.T) {
		_, err := RebarWeight(entities.BarGroup{DiameterMM: 16}, 6.0, 6.0, 0, 2)
		require.Error(t, err)
	})
}
