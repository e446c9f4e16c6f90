package takeoff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"kantidad/internal/domain/entities"
)

var ErrInvalidHeight = errors.New("invalid height: end level must be above start level")

// LevelResolver answers label and elevation-order queries over the project
// levels. Levels are sorted once by ascending elevation.

type LevelResolver struct {
	sorted  []entities.Level
	byLabel map[string]entities.Level
	labels  []string
}

func NewLevelResolver(levels []entities.Level) *LevelResolver {
	r := &LevelResolver{byLabel: make(map[string]entities.Level, len(levels))}
	r.sorted = append(r.sorted, levels...)
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Elevation < r.sorted[j].Elevation })
	for _, l := range r.sorted {
		r.byLabel[l.Label] = l
		r.labels = append(r.labels, l.Label)
	}
	return r
}

func (r *LevelResolver) ByLabel(label string) (entities.Level, bool) {
	l, ok := r.byLabel[label]
	return l, ok
}

// NextAbove returns the immediate successor of a level in elevation order,
// or false when the level is topmost.
func (r *LevelResolver) NextAbove(label string) (entities.Level, bool) {
	cur, ok := r.byLabel[label]
	if !ok {
		return entities.Level{}, false
	}
	for _, l := range r.sorted {
		if l.Elevation > cur.Elevation {
			return l, true
		}
	}
	return entities.Level{}, false
}

// IsTopmost reports whether a level is the highest by elevation.
func (r *LevelResolver) IsTopmost(label string) bool {
	cur, ok := r.byLabel[label]
	if !ok || len(r.sorted) == 0 {
		return false
	}
	return cur.Elevation >= r.sorted[len(r.sorted)-1].Elevation
}

// HeightBetween requires b strictly above a.
func (r *LevelResolver) HeightBetween(a, b entities.Level) (float64, error) {
	if b.Elevation <= a.Elevation {
		return 0, fmt.Errorf("%w: %q (%.3f) to %q (%.3f)", ErrInvalidHeight, a.Label, a.Elevation, b.Label, b.Elevation)
	}
	return b.Elevation - a.Elevation, nil
}

// Labels returns every valid level label for failure messages.
func (r *LevelResolver) Labels() []string {
	return r.labels
}

func (r *LevelResolver) labelList() string {
	if len(r.labels) == 0 {
		return "none defined"
	}
	return strings.Join(r.labels, ", ")
}
