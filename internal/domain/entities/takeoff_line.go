package entities

import "time"

// Trade is the work-category partition used as the primary aggregation and
// classification key.

type Trade string

const (
	TradeConcrete  Trade = "Concrete"
	TradeRebar     Trade = "Rebar"
	TradeFormwork  Trade = "Formwork"
	TradeFinishes  Trade = "Finishes"
	TradeRoofing   Trade = "Roofing"
	TradeEarthwork Trade = "Earthwork"
)

// QuantityKind identifies which quantity of an element a takeoff line
// represents. It is part of the deterministic line id.

type QuantityKind string

const (
	KindConcrete       QuantityKind = "concrete"
	KindFormwork       QuantityKind = "formwork"
	KindRebarMain      QuantityKind = "rebar_main"
	KindRebarSecondary QuantityKind = "rebar_secondary"
	KindRebarStirrups  QuantityKind = "rebar_stirrups"
	KindRebarTies      QuantityKind = "rebar_ties"
	KindFinish         QuantityKind = "finish"
	KindRoofing        QuantityKind = "roofing"
)

// TakeoffLine is the universal calculation-result record.
//
// Lines are immutable once produced; one orchestration run produces a full,
// disposable set. IDs are deterministic ("tof_{instanceID}_{kind}") so that
// re-running the same inputs is idempotent at the id level.
//
// RawQuantity keeps the pre-rounding value so downstream aggregation can be
// audited against the configured rounding tolerance.

type TakeoffLine struct {
	ID              string             `json:"id"`
	SourceElementID string             `json:"source_element_id"`
	Trade           Trade              `json:"trade"`
	ResourceKey     string             `json:"resource_key"`
	Quantity        float64            `json:"quantity"`
	RawQuantity     float64            `json:"raw_quantity"`
	Unit            string             `json:"unit"`
	FormulaText     string             `json:"formula_text"`
	InputsSnapshot  map[string]float64 `json:"inputs_snapshot,omitempty"`
	Assumptions     []string           `json:"assumptions,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	CalculatedAt    time.Time          `json:"calculated_at"`
}

// TakeoffSummary is accumulated incrementally while lines are produced;
// it is never recomputed by re-scanning the line set.

type TakeoffSummary struct {
	ConcreteVolume float64        `json:"concrete_volume"`
	RebarWeight    float64        `json:"rebar_weight"`
	FormworkArea   float64        `json:"formwork_area"`
	InstanceCounts map[string]int `json:"instance_counts,omitempty"`
	LineCount      int            `json:"line_count"`
}
