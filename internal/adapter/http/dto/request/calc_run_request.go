package request

import "kantidad/internal/domain/entities"

// CalcRunRequest triggers one calculation run. The body is optional: with
// no overrides the project settings (or the engine defaults) apply.
type CalcRunRequest struct {
	Settings *SettingsRequest `json:"settings"`
}

func (r CalcRunRequest) ResolveOverrides() *entities.Settings {
	return r.Settings.ToSettings()
}
