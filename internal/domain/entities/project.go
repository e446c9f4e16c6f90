package entities

import "time"

// FinishSchedule is one finishes quantity scheduled outside the structural
// grid (plaster areas, tile areas, painting). It feeds the same TakeoffLine
// contract as the structural path; the DPWH item must be assigned directly.

type FinishSchedule struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	DPWHItem string   `json:"dpwh_item,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// RoofPlane is one measured roofing surface.

type RoofPlane struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Area     float64  `json:"area"`
	DPWHItem string   `json:"dpwh_item,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Project is the parametric building description the calculation engines
// consume: a labeled grid, levels, element templates and placed instances.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the full snapshot is stored as a single JSON attribute

type Project struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	GridX            []GridLine        `json:"grid_x"`
	GridY            []GridLine        `json:"grid_y"`
	Levels           []Level           `json:"levels"`
	ElementTemplates []ElementTemplate `json:"element_templates"`
	ElementInstances []ElementInstance `json:"element_instances"`
	FinishSchedules  []FinishSchedule  `json:"finish_schedules,omitempty"`
	RoofPlanes       []RoofPlane       `json:"roof_planes,omitempty"`
	Settings         *Settings         `json:"settings,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
