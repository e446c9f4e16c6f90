package entities

// ElementType enumerates the structural element kinds the takeoff engine
// knows how to measure.

type ElementType string

const (
	ElementTypeBeam       ElementType = "beam"
	ElementTypeColumn     ElementType = "column"
	ElementTypeSlab       ElementType = "slab"
	ElementTypeFoundation ElementType = "foundation"
)

// BarGroup describes one reinforcement group. Either Count or SpacingM is
// given; when only a spacing is present the bar count is derived from the
// governing span.

type BarGroup struct {
	DiameterMM float64 `json:"diameter_mm"`
	Count      int     `json:"count,omitempty"`
	SpacingM   float64 `json:"spacing_m,omitempty"`
}

// RebarConfig is the per-template reinforcement configuration.
//
// DPWHRebarItem, when set, overrides the diameter-derived pay item for every
// group in the template.

type RebarConfig struct {
	MainBars      *BarGroup `json:"main_bars,omitempty"`
	SecondaryBars *BarGroup `json:"secondary_bars,omitempty"`
	Stirrups      *BarGroup `json:"stirrups,omitempty"`
	Ties          *BarGroup `json:"ties,omitempty"`
	DPWHRebarItem string    `json:"dpwh_rebar_item,omitempty"`
}

// ElementTemplate is immutable reference data shared by many instances.
//
// Properties is deliberately untyped: older project snapshots store it as a
// plain record while newer ones use a key/value map. Read it only through
// takeoff.GetProp.

type ElementTemplate struct {
	ID             string      `json:"id"`
	Type           ElementType `json:"type"`
	Name           string      `json:"name"`
	Properties     any         `json:"properties,omitempty"`
	RebarConfig    *RebarConfig `json:"rebar_config,omitempty"`
	DPWHItemNumber string      `json:"dpwh_item_number,omitempty"`
}

// Placement locates an instance against the grid and levels.
//
// GridRef carries two axis tokens whose format depends on the element type:
// a token with a hyphen is a span ("A-C"), without is a single coordinate.
// EndLevelID is only meaningful for columns.

type Placement struct {
	LevelID        string             `json:"level_id"`
	EndLevelID     string             `json:"end_level_id,omitempty"`
	GridRef        []string           `json:"grid_ref,omitempty"`
	CustomGeometry map[string]float64 `json:"custom_geometry,omitempty"`
}

// ElementInstance is one physically placed element. Created by the editor
// UI, consumed read-only here.

type ElementInstance struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"template_id"`
	Placement  Placement `json:"placement"`
	Tags       []string  `json:"tags,omitempty"`
}
