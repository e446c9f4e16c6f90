package takeoff

import (
	"fmt"
	"strings"

	"kantidad/internal/domain/entities"
)

// ColumnShape selects the cross-section formulae for columns.

type ColumnShape string

const (
	ShapeRectangular ColumnShape = "rectangular"
	ShapeCircular    ColumnShape = "circular"
)

// FoundationMode distinguishes the two foundation placement modes.

type FoundationMode string

const (
	FoundationMat      FoundationMode = "mat"
	FoundationIsolated FoundationMode = "isolated"
)

type BeamGeometry struct {
	Width  float64
	Height float64
	Length float64
}

type ColumnGeometry struct {
	Shape      ColumnShape
	Width      float64
	Depth      float64
	Diameter   float64
	Height     float64
	StartLevel entities.Level
	EndLevel   entities.Level
}

// SlabGeometry retains the per-axis span lengths: secondary-direction rebar
// needs the perpendicular span, so Area alone is not enough.

type SlabGeometry struct {
	Thickness float64
	XLength   float64
	YLength   float64
}

func (g SlabGeometry) Area() float64 { return g.XLength * g.YLength }

type FoundationGeometry struct {
	Mode FoundationMode

	// mat
	Thickness float64
	XLength   float64
	YLength   float64

	// isolated footing
	Length float64
	Width  float64
	Depth  float64
}

// GeometryEngine resolves instance placement plus template properties into
// physical dimensions. Resolution order per dimension: explicit
// customGeometry override, then template properties, then derivation from
// the grid reference. All failures are plain errors for accumulation; none
// abort the batch.

type GeometryEngine struct {
	grids  *GridResolver
	levels *LevelResolver
}

func NewGeometryEngine(grids *GridResolver, levels *LevelResolver) *GeometryEngine {
	return &GeometryEngine{grids: grids, levels: levels}
}

// ResolveBeam needs width/height from the template and a length from the
// override, the template, or a span-and-perpendicular-line grid reference:
// exactly one of the two tokens must be a span (the beam's run), the other
// a single coordinate (the beam's offset line).
func (e *GeometryEngine) ResolveBeam(inst entities.ElementInstance, tmpl entities.ElementTemplate) (BeamGeometry, error) {
	g := BeamGeometry{
		Width:  GetProp(tmpl.Properties, "width", 0),
		Height: GetProp(tmpl.Properties, "height", 0),
	}
	if g.Width <= 0 || g.Height <= 0 {
		return BeamGeometry{}, fmt.Errorf("beam %s: template %q has no positive width/height properties", inst.ID, tmpl.Name)
	}

	if v, ok := inst.Placement.CustomGeometry["length"]; ok && v > 0 {
		g.Length = v
		return g, nil
	}
	if v, ok := LookupProp(tmpl.Properties, "length"); ok && v > 0 {
		g.Length = v
		return g, nil
	}

	length, err := e.beamLengthFromGridRef(inst.Placement.GridRef)
	if err != nil {
		return BeamGeometry{}, e.gridRefError("beam", inst, tmpl, err)
	}
	g.Length = length
	return g, nil
}

func (e *GeometryEngine) beamLengthFromGridRef(gridRef []string) (float64, error) {
	if len(gridRef) != 2 {
		return 0, fmt.Errorf("expected two grid tokens, got %d", len(gridRef))
	}
	xIsSpan := IsSpanToken(gridRef[0])
	yIsSpan := IsSpanToken(gridRef[1])
	if xIsSpan == yIsSpan {
		return 0, fmt.Errorf("reference %v must pair exactly one span with one coordinate", gridRef)
	}

	if xIsSpan {
		span, err := e.grids.SpanOf(gridRef[0], AxisX)
		if err != nil {
			return 0, err
		}
		// the perpendicular line still has to resolve
		if _, err := e.grids.SpanOf(gridRef[1], AxisY); err != nil {
			return 0, err
		}
		return span.Length(), nil
	}

	span, err := e.grids.SpanOf(gridRef[1], AxisY)
	if err != nil {
		return 0, err
	}
	if _, err := e.grids.SpanOf(gridRef[0], AxisX); err != nil {
		return 0, err
	}
	return span.Length(), nil
}

// ResolveColumn computes the cross-section from the template and the height
// from the level pair. When no explicit end level exists the next level
// above is used; a topmost start level without an explicit end level skips
// the column with a warning rather than inventing a roof-column height.
func (e *GeometryEngine) ResolveColumn(inst entities.ElementInstance, tmpl entities.ElementTemplate) (geom ColumnGeometry, skipWarning string, err error) {
	geom.Shape = columnShape(tmpl.Properties)
	switch geom.Shape {
	case ShapeCircular:
		geom.Diameter = GetProp(tmpl.Properties, "diameter", 0)
		if geom.Diameter <= 0 {
			return ColumnGeometry{}, "", fmt.Errorf("column %s: template %q is circular but has no positive diameter", inst.ID, tmpl.Name)
		}
	default:
		geom.Width = GetProp(tmpl.Properties, "width", 0)
		geom.Depth = GetProp(tmpl.Properties, "depth", geom.Width)
		if geom.Width <= 0 || geom.Depth <= 0 {
			return ColumnGeometry{}, "", fmt.Errorf("column %s: template %q has no positive width/depth properties", inst.ID, tmpl.Name)
		}
	}

	start, ok := e.levels.ByLabel(inst.Placement.LevelID)
	if !ok {
		return ColumnGeometry{}, "", fmt.Errorf("column %s: level %q not found (valid levels: %s)", inst.ID, inst.Placement.LevelID, e.levels.labelList())
	}
	geom.StartLevel = start

	if endID := inst.Placement.EndLevelID; endID != "" {
		end, ok := e.levels.ByLabel(endID)
		if !ok {
			return ColumnGeometry{}, "", fmt.Errorf("column %s: end level %q not found (valid levels: %s)", inst.ID, endID, e.levels.labelList())
		}
		geom.EndLevel = end
	} else {
		end, ok := e.levels.NextAbove(start.Label)
		if !ok {
			return ColumnGeometry{}, fmt.Sprintf("column %s (template %q): start level %q is the top floor and no end level was given; skipped", inst.ID, tmpl.Name, start.Label), nil
		}
		geom.EndLevel = end
	}

	height, err := e.levels.HeightBetween(geom.StartLevel, geom.EndLevel)
	if err != nil {
		return ColumnGeometry{}, "", fmt.Errorf("column %s (template %q): %v", inst.ID, tmpl.Name, err)
	}
	geom.Height = height
	return geom, "", nil
}

func columnShape(properties any) ColumnShape {
	if s, ok := LookupPropString(properties, "shape"); ok {
		if strings.EqualFold(strings.TrimSpace(s), string(ShapeCircular)) {
			return ShapeCircular
		}
		return ShapeRectangular
	}
	// legacy templates encode shape by which dimensions they carry
	if d, ok := LookupProp(properties, "diameter"); ok && d > 0 {
		if w, ok := LookupProp(properties, "width"); !ok || w <= 0 {
			return ShapeCircular
		}
	}
	return ShapeRectangular
}

// ResolveSlab requires a two-span panel: both grid tokens hyphenated, one
// per axis. Custom geometry may override the span lengths directly.
func (e *GeometryEngine) ResolveSlab(inst entities.ElementInstance, tmpl entities.ElementTemplate) (SlabGeometry, error) {
	g := SlabGeometry{Thickness: GetProp(tmpl.Properties, "thickness", 0)}
	if v, ok := inst.Placement.CustomGeometry["thickness"]; ok && v > 0 {
		g.Thickness = v
	}
	if g.Thickness <= 0 {
		return SlabGeometry{}, fmt.Errorf("slab %s: template %q has no positive thickness property", inst.ID, tmpl.Name)
	}

	cx, okX := inst.Placement.CustomGeometry["x_length"]
	cy, okY := inst.Placement.CustomGeometry["y_length"]
	if okX && okY && cx > 0 && cy > 0 {
		g.XLength, g.YLength = cx, cy
		return g, nil
	}

	xLen, yLen, err := e.panelFromGridRef(inst.Placement.GridRef)
	if err != nil {
		return SlabGeometry{}, e.gridRefError("slab", inst, tmpl, err)
	}
	g.XLength, g.YLength = xLen, yLen
	return g, nil
}

func (e *GeometryEngine) panelFromGridRef(gridRef []string) (xLen, yLen float64, err error) {
	if len(gridRef) != 2 {
		return 0, 0, fmt.Errorf("expected two grid tokens, got %d", len(gridRef))
	}
	if !IsSpanToken(gridRef[0]) || !IsSpanToken(gridRef[1]) {
		return 0, 0, fmt.Errorf("reference %v must be two spans, one per axis", gridRef)
	}
	xSpan, err := e.grids.SpanOf(gridRef[0], AxisX)
	if err != nil {
		return 0, 0, err
	}
	ySpan, err := e.grids.SpanOf(gridRef[1], AxisY)
	if err != nil {
		return 0, 0, err
	}
	return xSpan.Length(), ySpan.Length(), nil
}

// ResolveFoundation distinguishes a mat (thickness property, resolved like a
// slab panel) from an isolated footing (length/width/depth properties,
// point placement, quantities from template dimensions only).
func (e *GeometryEngine) ResolveFoundation(inst entities.ElementInstance, tmpl entities.ElementTemplate) (FoundationGeometry, error) {
	if t, ok := LookupProp(tmpl.Properties, "thickness"); ok && t > 0 {
		g := FoundationGeometry{Mode: FoundationMat, Thickness: t}
		if v, ok := inst.Placement.CustomGeometry["thickness"]; ok && v > 0 {
			g.Thickness = v
		}
		cx, okX := inst.Placement.CustomGeometry["x_length"]
		cy, okY := inst.Placement.CustomGeometry["y_length"]
		if okX && okY && cx > 0 && cy > 0 {
			g.XLength, g.YLength = cx, cy
			return g, nil
		}
		xLen, yLen, err := e.panelFromGridRef(inst.Placement.GridRef)
		if err != nil {
			return FoundationGeometry{}, e.gridRefError("foundation", inst, tmpl, err)
		}
		g.XLength, g.YLength = xLen, yLen
		return g, nil
	}

	g := FoundationGeometry{
		Mode:   FoundationIsolated,
		Length: GetProp(tmpl.Properties, "length", 0),
		Width:  GetProp(tmpl.Properties, "width", 0),
		Depth:  GetProp(tmpl.Properties, "depth", 0),
	}
	for key, dst := range map[string]*float64{"length": &g.Length, "width": &g.Width, "depth": &g.Depth} {
		if v, ok := inst.Placement.CustomGeometry[key]; ok && v > 0 {
			*dst = v
		}
	}
	if g.Length <= 0 || g.Width <= 0 || g.Depth <= 0 {
		return FoundationGeometry{}, fmt.Errorf("foundation %s: template %q needs thickness (mat) or length/width/depth (isolated footing)", inst.ID, tmpl.Name)
	}

	// a grid intersection placement, when given, still has to resolve
	if len(inst.Placement.GridRef) == 2 {
		if _, err := e.grids.SpanOf(inst.Placement.GridRef[0], AxisX); err != nil {
			return FoundationGeometry{}, e.gridRefError("foundation", inst, tmpl, err)
		}
		if _, err := e.grids.SpanOf(inst.Placement.GridRef[1], AxisY); err != nil {
			return FoundationGeometry{}, e.gridRefError("foundation", inst, tmpl, err)
		}
	}
	return g, nil
}

// gridRefError is the standard self-diagnosis contract: every geometry
// failure identifies the instance, template, attempted reference and the
// complete list of valid labels on both axes.
func (e *GeometryEngine) gridRefError(kind string, inst entities.ElementInstance, tmpl entities.ElementTemplate, cause error) error {
	return fmt.Errorf("%s %s (template %q): cannot resolve grid reference %v: %v (valid X labels: %s; valid Y labels: %s)",
		kind, inst.ID, tmpl.Name, inst.Placement.GridRef, cause,
		e.grids.labelList(AxisX), e.grids.labelList(AxisY))
}
