package response

import (
	"time"

	"kantidad/internal/domain/entities"
)

type ProjectResponse struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	GridX            []entities.GridLine        `json:"grid_x"`
	GridY            []entities.GridLine        `json:"grid_y"`
	Levels           []entities.Level           `json:"levels"`
	ElementTemplates []entities.ElementTemplate `json:"element_templates"`
	ElementInstances []entities.ElementInstance `json:"element_instances"`
	FinishSchedules  []entities.FinishSchedule  `json:"finish_schedules,omitempty"`
	RoofPlanes       []entities.RoofPlane       `json:"roof_planes,omitempty"`
	Settings         *entities.Settings         `json:"settings,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		GridX:            p.GridX,
		GridY:            p.GridY,
		Levels:           p.Levels,
		ElementTemplates: p.ElementTemplates,
		ElementInstances: p.ElementInstances,
		FinishSchedules:  p.FinishSchedules,
		RoofPlanes:       p.RoofPlanes,
		Settings:         p.Settings,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
