package request

import (
	"kantidad/internal/domain/entities"
)

type GridLineRequest struct {
	Label  string  `json:"label" binding:"required"`
	Offset float64 `json:"offset"`
}

type LevelRequest struct {
	Label     string  `json:"label" binding:"required"`
	Elevation float64 `json:"elevation"`
}

type BarGroupRequest struct {
	DiameterMM float64 `json:"diameter_mm" binding:"required"`
	Count      int     `json:"count"`
	SpacingM   float64 `json:"spacing_m"`
}

type RebarConfigRequest struct {
	MainBars      *BarGroupRequest `json:"main_bars"`
	SecondaryBars *BarGroupRequest `json:"secondary_bars"`
	Stirrups      *BarGroupRequest `json:"stirrups"`
	Ties          *BarGroupRequest `json:"ties"`
	DPWHRebarItem string           `json:"dpwh_rebar_item"`
}

type ElementTemplateRequest struct {
	ID             string              `json:"id"`
	Type           string              `json:"type" binding:"required"`
	Name           string              `json:"name" binding:"required"`
	Properties     any                 `json:"properties"`
	RebarConfig    *RebarConfigRequest `json:"rebar_config"`
	DPWHItemNumber string              `json:"dpwh_item_number"`
}

type PlacementRequest struct {
	LevelID        string             `json:"level_id" binding:"required"`
	EndLevelID     string             `json:"end_level_id"`
	GridRef        []string           `json:"grid_ref"`
	CustomGeometry map[string]float64 `json:"custom_geometry"`
}

type ElementInstanceRequest struct {
	ID         string           `json:"id"`
	TemplateID string           `json:"template_id" binding:"required"`
	Placement  PlacementRequest `json:"placement" binding:"required"`
	Tags       []string         `json:"tags"`
}

type FinishScheduleRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" binding:"required"`
	Quantity float64  `json:"quantity" binding:"required"`
	Unit     string   `json:"unit" binding:"required"`
	DPWHItem string   `json:"dpwh_item"`
	Tags     []string `json:"tags"`
}

type RoofPlaneRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" binding:"required"`
	Area     float64  `json:"area" binding:"required"`
	DPWHItem string   `json:"dpwh_item"`
	Tags     []string `json:"tags"`
}

type SettingsRequest struct {
	Waste struct {
		Concrete *float64 `json:"concrete"`
		Rebar    *float64 `json:"rebar"`
		Formwork *float64 `json:"formwork"`
	} `json:"waste"`
	Rounding struct {
		Concrete *int `json:"concrete"`
		Rebar    *int `json:"rebar"`
		Formwork *int `json:"formwork"`
	} `json:"rounding"`
}

// ToSettings layers the request fields over the built-in defaults: a field
// the client omits keeps its default instead of zeroing out.
func (r *SettingsRequest) ToSettings() *entities.Settings {
	if r == nil {
		return nil
	}
	s := entities.DefaultSettings()
	if r.Waste.Concrete != nil {
		s.Waste.Concrete = *r.Waste.Concrete
	}
	if r.Waste.Rebar != nil {
		s.Waste.Rebar = *r.Waste.Rebar
	}
	if r.Waste.Formwork != nil {
		s.Waste.Formwork = *r.Waste.Formwork
	}
	if r.Rounding.Concrete != nil {
		s.Rounding.Concrete = *r.Rounding.Concrete
	}
	if r.Rounding.Rebar != nil {
		s.Rounding.Rebar = *r.Rounding.Rebar
	}
	if r.Rounding.Formwork != nil {
		s.Rounding.Formwork = *r.Rounding.Formwork
	}
	return &s
}

// ProjectRequest is the full editable project snapshot. The grid, levels,
// templates and instances always travel together: the calculation engines
// never consume a partial snapshot.
type ProjectRequest struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name" binding:"required"`
	GridX            []GridLineRequest        `json:"grid_x"`
	GridY            []GridLineRequest        `json:"grid_y"`
	Levels           []LevelRequest           `json:"levels"`
	ElementTemplates []ElementTemplateRequest `json:"element_templates"`
	ElementInstances []ElementInstanceRequest `json:"element_instances"`
	FinishSchedules  []FinishScheduleRequest  `json:"finish_schedules"`
	RoofPlanes       []RoofPlaneRequest       `json:"roof_planes"`
	Settings         *SettingsRequest         `json:"settings"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	p := entities.Project{
		ID:       r.ID,
		Name:     r.Name,
		GridX:    toGridLines(r.GridX),
		GridY:    toGridLines(r.GridY),
		Settings: r.Settings.ToSettings(),
	}
	for _, l := range r.Levels {
		p.Levels = append(p.Levels, entities.Level{Label: l.Label, Elevation: l.Elevation})
	}
	for _, t := range r.ElementTemplates {
		p.ElementTemplates = append(p.ElementTemplates, entities.ElementTemplate{
			ID:             t.ID,
			Type:           entities.ElementType(t.Type),
			Name:           t.Name,
			Properties:     t.Properties,
			RebarConfig:    t.RebarConfig.toEntity(),
			DPWHItemNumber: t.DPWHItemNumber,
		})
	}
	for _, i := range r.ElementInstances {
		p.ElementInstances = append(p.ElementInstances, entities.ElementInstance{
			ID:         i.ID,
			TemplateID: i.TemplateID,
			Placement: entities.Placement{
				LevelID:        i.Placement.LevelID,
				EndLevelID:     i.Placement.EndLevelID,
				GridRef:        i.Placement.GridRef,
				CustomGeometry: i.Placement.CustomGeometry,
			},
			Tags: i.Tags,
		})
	}
	for _, f := range r.FinishSchedules {
		p.FinishSchedules = append(p.FinishSchedules, entities.FinishSchedule{
			ID:       f.ID,
			Name:     f.Name,
			Quantity: f.Quantity,
			Unit:     f.Unit,
			DPWHItem: f.DPWHItem,
			Tags:     f.Tags,
		})
	}
	for _, rp := range r.RoofPlanes {
		p.RoofPlanes = append(p.RoofPlanes, entities.RoofPlane{
			ID:       rp.ID,
			Name:     rp.Name,
			Area:     rp.Area,
			DPWHItem: rp.DPWHItem,
			Tags:     rp.Tags,
		})
	}
	return p
}

func (r *RebarConfigRequest) toEntity() *entities.RebarConfig {
	if r == nil {
		return nil
	}
	return &entities.RebarConfig{
		MainBars:      r.MainBars.toEntity(),
		SecondaryBars: r.SecondaryBars.toEntity(),
		Stirrups:      r.Stirrups.toEntity(),
		Ties:          r.Ties.toEntity(),
		DPWHRebarItem: r.DPWHRebarItem,
	}
}

func (b *BarGroupRequest) toEntity() *entities.BarGroup {
	if b == nil {
		return nil
	}
	return &entities.BarGroup{DiameterMM: b.DiameterMM, Count: b.Count, SpacingM: b.SpacingM}
}

func toGridLines(reqs []GridLineRequest) []entities.GridLine {
	if len(reqs) == 0 {
		return nil
	}
	lines := make([]entities.GridLine, 0, len(reqs))
	for _, g := range reqs {
		lines = append(lines, entities.GridLine{Label: g.Label, Offset: g.Offset})
	}
	return lines
}
