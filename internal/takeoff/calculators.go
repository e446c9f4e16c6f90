package takeoff

import (
	"fmt"
	"math"

	"kantidad/internal/domain/entities"
)

// QuantityResult is the output of one pure calculator: the rounded value,
// the pre-rounding raw value, a human-readable derivation and a snapshot of
// the numeric inputs used.

type QuantityResult struct {
	Value   float64
	Raw     float64
	Formula string
	Inputs  map[string]float64
}

// RoundTo rounds half away from zero at the given decimal precision.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// CeilDiv derives a bar count from a span and spacing: ⌈span/spacing⌉ + 1.
func CeilDiv(span, spacing float64) int {
	return int(math.Ceil(span/spacing)) + 1
}

// --- concrete volume (waste applies) ---

func ConcreteVolumeBeam(g BeamGeometry, waste float64, decimals int) QuantityResult {
	raw := g.Width * g.Height * g.Length * (1 + waste)
	return QuantityResult{
		Value: RoundTo(raw, decimals),
		Raw:   raw,
		Formula: fmt.Sprintf("%.2f × %.2f × %.2f × (1 + %.2f waste) = %.3f cu.m",
			g.Width, g.Height, g.Length, waste, raw),
		Inputs: map[string]float64{"width": g.Width, "height": g.Height, "length": g.Length, "waste": waste},
	}
}

func ConcreteVolumeColumn(g ColumnGeometry, waste float64, decimals int) QuantityResult {
	var section float64
	var sectionText string
	if g.Shape == ShapeCircular {
		section = math.Pi * g.Diameter * g.Diameter / 4
		sectionText = fmt.Sprintf("π × %.2f² / 4", g.Diameter)
	} else {
		section = g.Width * g.Depth
		sectionText = fmt.Sprintf("%.2f × %.2f", g.Width, g.Depth)
	}
	raw := section * g.Height * (1 + waste)
	return QuantityResult{
		Value:   RoundTo(raw, decimals),
		Raw:     raw,
		Formula: fmt.Sprintf("(%s) × %.2f × (1 + %.2f waste) = %.3f cu.m", sectionText, g.Height, waste, raw),
		Inputs: map[string]float64{
			"width": g.Width, "depth": g.Depth, "diameter": g.Diameter,
			"height": g.Height, "waste": waste,
		},
	}
}

func ConcreteVolumeSlab(g SlabGeometry, waste float64, decimals int) QuantityResult {
	raw := g.Thickness * g.Area() * (1 + waste)
	return QuantityResult{
		Value: RoundTo(raw, decimals),
		Raw:   raw,
		Formula: fmt.Sprintf("%.2f × (%.2f × %.2f) × (1 + %.2f waste) = %.3f cu.m",
			g.Thickness, g.XLength, g.YLength, waste, raw),
		Inputs: map[string]float64{"thickness": g.Thickness, "x_length": g.XLength, "y_length": g.YLength, "waste": waste},
	}
}

func ConcreteVolumeFoundation(g FoundationGeometry, waste float64, decimals int) QuantityResult {
	if g.Mode == FoundationMat {
		slab := SlabGeometry{Thickness: g.Thickness, XLength: g.XLength, YLength: g.YLength}
		return ConcreteVolumeSlab(slab, waste, decimals)
	}
	raw := g.Length * g.Width * g.Depth * (1 + waste)
	return QuantityResult{
		Value: RoundTo(raw, decimals),
		Raw:   raw,
		Formula: fmt.Sprintf("%.2f × %.2f × %.2f × (1 + %.2f waste) = %.3f cu.m",
			g.Length, g.Width, g.Depth, waste, raw),
		Inputs: map[string]float64{"length": g.Length, "width": g.Width, "depth": g.Depth, "waste": waste},
	}
}

// --- formwork area (NO waste, by domain rule: formwork is reused) ---

// FormworkAreaBeam is bottom plus two sides.
func FormworkAreaBeam(g BeamGeometry, decimals int) QuantityResult {
	raw := g.Width*g.Length + 2*g.Height*g.Length
	return QuantityResult{
		Value: RoundTo(raw, decimals),
		Raw:   raw,
		Formula: fmt.Sprintf("%.2f × %.2f + 2 × %.2f × %.2f = %.2f sq.m",
			g.Width, g.Length, g.Height, g.Length, raw),
		Inputs: map[string]float64{"width": g.Width, "height": g.Height, "length": g.Length},
	}
}

// FormworkAreaColumn is four sides for a rectangular section, the lateral
// cylindrical surface for a circular one.
func FormworkAreaColumn(g ColumnGeometry, decimals int) QuantityResult {
	var raw float64
	var formula string
	if g.Shape == ShapeCircular {
		raw = math.Pi * g.Diameter * g.Height
		formula = fmt.Sprintf("π × %.2f × %.2f = %.2f sq.m", g.Diameter, g.Height, raw)
	} else {
		raw = 2 * (g.Width + g.Depth) * g.Height
		formula = fmt.Sprintf("2 × (%.2f + %.2f) × %.2f = %.2f sq.m", g.Width, g.Depth, g.Height, raw)
	}
	return QuantityResult{
		Value:   RoundTo(raw, decimals),
		Raw:     raw,
		Formula: formula,
		Inputs: map[string]float64{
			"width": g.Width, "depth": g.Depth, "diameter": g.Diameter, "height": g.Height,
		},
	}
}

// FormworkAreaSlab is the soffit only.
func FormworkAreaSlab(g SlabGeometry, decimals int) QuantityResult {
	raw := g.Area()
	return QuantityResult{
		Value:   RoundTo(raw, decimals),
		Raw:     raw,
		Formula: fmt.Sprintf("%.2f × %.2f = %.2f sq.m", g.XLength, g.YLength, raw),
		Inputs:  map[string]float64{"x_length": g.XLength, "y_length": g.YLength},
	}
}

// FormworkAreaFoundation is perimeter × depth; a mat uses its panel edges
// and thickness as the depth.
func FormworkAreaFoundation(g FoundationGeometry, decimals int) QuantityResult {
	var raw float64
	var formula string
	var inputs map[string]float64
	if g.Mode == FoundationMat {
		raw = 2 * (g.XLength + g.YLength) * g.Thickness
		formula = fmt.Sprintf("2 × (%.2f + %.2f) × %.2f = %.2f sq.m", g.XLength, g.YLength, g.Thickness, raw)
		inputs = map[string]float64{"x_length": g.XLength, "y_length": g.YLength, "thickness": g.Thickness}
	} else {
		raw = 2 * (g.Length + g.Width) * g.Depth
		formula = fmt.Sprintf("2 × (%.2f + %.2f) × %.2f = %.2f sq.m", g.Length, g.Width, g.Depth, raw)
		inputs = map[string]float64{"length": g.Length, "width": g.Width, "depth": g.Depth}
	}
	return QuantityResult{Value: RoundTo(raw, decimals), Raw: raw, Formula: formula, Inputs: inputs}
}

// --- rebar weight (waste applies) ---

// RebarWeight computes one reinforcement group. The bar count comes from an
// explicit count, or from ⌈countSpan/spacing⌉+1 when only a spacing is
// configured. barLength is the length of one bar, countSpan the distance the
// spacing distributes bars across.
func RebarWeight(group entities.BarGroup, barLength, countSpan, waste float64, decimals int) (QuantityResult, error) {
	if group.DiameterMM <= 0 {
		return QuantityResult{}, fmt.Errorf("rebar group has no positive bar diameter")
	}
	if barLength <= 0 {
		return QuantityResult{}, fmt.Errorf("rebar group has no positive bar length")
	}

	count := group.Count
	if count <= 0 {
		if group.SpacingM <= 0 {
			return QuantityResult{}, fmt.Errorf("rebar group needs a bar count or a positive spacing")
		}
		count = CeilDiv(countSpan, group.SpacingM)
	}

	unitWeight := UnitWeightPerMeter(group.DiameterMM)
	raw := float64(count) * barLength * unitWeight * (1 + waste)
	return QuantityResult{
		Value: RoundTo(raw, decimals),
		Raw:   raw,
		Formula: fmt.Sprintf("%d bars × %.2f m × %.3f kg/m (⌀%.0fmm) × (1 + %.2f waste) = %.2f kg",
			count, barLength, unitWeight, group.DiameterMM, waste, raw),
		Inputs: map[string]float64{
			"count":       float64(count),
			"bar_length":  barLength,
			"diameter_mm": group.DiameterMM,
			"unit_weight": unitWeight,
			"waste":       waste,
		},
	}, nil
}
