package entities

// WasteSettings are multiplicative allowances applied to raw quantities.
// Formwork is intentionally zero: formwork is reused, not consumed, so no
// waste factor may ever be applied to it.

type WasteSettings struct {
	Concrete float64 `json:"concrete"`
	Rebar    float64 `json:"rebar"`
	Formwork float64 `json:"formwork"`
}

// RoundingSettings are per-trade decimal precisions applied after waste.

type RoundingSettings struct {
	Concrete int `json:"concrete"`
	Rebar    int `json:"rebar"`
	Formwork int `json:"formwork"`
}

type Settings struct {
	Waste    WasteSettings    `json:"waste"`
	Rounding RoundingSettings `json:"rounding"`
}

func DefaultSettings() Settings {
	return Settings{
		Waste:    WasteSettings{Concrete: 0.05, Rebar: 0.03, Formwork: 0},
		Rounding: RoundingSettings{Concrete: 3, Rebar: 2, Formwork: 2},
	}
}
