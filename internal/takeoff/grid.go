package takeoff

import (
	"fmt"
	"sort"
	"strings"

	"kantidad/internal/domain/entities"
)

// Axis names one of the two orthogonal grid directions.

type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
)

// Span is a resolved start/end offset pair on one axis. A single coordinate
// token resolves to a zero-length span (Start == End).

type Span struct {
	Start float64
	End   float64
}

// Length is order-independent: "A-C" and "C-A" measure the same run.
func (s Span) Length() float64 {
	if s.End >= s.Start {
		return s.End - s.Start
	}
	return s.Start - s.End
}

// GridResolver maps symbolic axis labels to numeric offsets.
//
// Label maps are built once per run; instances then resolve by map lookup
// instead of re-scanning the grid sets.

type GridResolver struct {
	xByLabel map[string]float64
	yByLabel map[string]float64
	xLabels  []string
	yLabels  []string
}

func NewGridResolver(gridX, gridY []entities.GridLine) *GridResolver {
	r := &GridResolver{
		xByLabel: make(map[string]float64, len(gridX)),
		yByLabel: make(map[string]float64, len(gridY)),
	}
	for _, g := range gridX {
		r.xByLabel[g.Label] = g.Offset
		r.xLabels = append(r.xLabels, g.Label)
	}
	for _, g := range gridY {
		r.yByLabel[g.Label] = g.Offset
		r.yLabels = append(r.yLabels, g.Label)
	}
	sort.Strings(r.xLabels)
	sort.Strings(r.yLabels)
	return r
}

// OffsetOf resolves a single axis label.
func (r *GridResolver) OffsetOf(label string, axis Axis) (float64, bool) {
	v, ok := r.byAxis(axis)[label]
	return v, ok
}

// Labels returns every valid label on an axis, sorted, for failure messages.
func (r *GridResolver) Labels(axis Axis) []string {
	if axis == AxisY {
		return r.yLabels
	}
	return r.xLabels
}

// IsSpanToken reports whether a grid token denotes a span ("A-C") rather
// than a single coordinate.
func IsSpanToken(token string) bool {
	return strings.Contains(token, "-")
}

// SpanOf resolves a grid token on one axis. A hyphenated token is a span
// whose two sides resolve independently; any other token is a single
// coordinate. Unresolved labels produce the standard self-diagnosis error
// naming the attempted reference and every valid label on the axis.
func (r *GridResolver) SpanOf(token string, axis Axis) (Span, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Span{}, fmt.Errorf("empty grid reference on %s axis (valid labels: %s)", axis, r.labelList(axis))
	}

	if IsSpanToken(token) {
		parts := strings.SplitN(token, "-", 2)
		start, ok := r.OffsetOf(strings.TrimSpace(parts[0]), axis)
		if !ok {
			return Span{}, r.notFound(strings.TrimSpace(parts[0]), token, axis)
		}
		end, ok := r.OffsetOf(strings.TrimSpace(parts[1]), axis)
		if !ok {
			return Span{}, r.notFound(strings.TrimSpace(parts[1]), token, axis)
		}
		return Span{Start: start, End: end}, nil
	}

	offset, ok := r.OffsetOf(token, axis)
	if !ok {
		return Span{}, r.notFound(token, token, axis)
	}
	return Span{Start: offset, End: offset}, nil
}

func (r *GridResolver) notFound(label, token string, axis Axis) error {
	return fmt.Errorf("grid label %q (in reference %q) not found on %s axis (valid labels: %s)",
		label, token, axis, r.labelList(axis))
}

func (r *GridResolver) labelList(axis Axis) string {
	labels := r.Labels(axis)
	if len(labels) == 0 {
		return "none defined"
	}
	return strings.Join(labels, ", ")
}

func (r *GridResolver) byAxis(axis Axis) map[string]float64 {
	if axis == AxisY {
		return r.yByLabel
	}
	return r.xByLabel
}
