package takeoff

import (
	"fmt"
	"time"

	"kantidad/internal/domain/entities"
)

// LineFactory assembles TakeoffLine records with deterministic ids and the
// standard tag vocabulary. Determinism ("tof_{instanceID}_{kind}") makes
// re-runs idempotent at the id level, which diffing and auditing depend on.

type LineFactory struct {
	now func() time.Time
}

func NewLineFactory() *LineFactory {
	return &LineFactory{now: time.Now}
}

type lineSpec struct {
	Instance    entities.ElementInstance
	Template    entities.ElementTemplate
	LevelLabel  string
	Kind        entities.QuantityKind
	Trade       entities.Trade
	Unit        string
	ResourceKey string
	Result      QuantityResult
	ExtraTags   []string
	Assumptions []string
}

func (f *LineFactory) build(s lineSpec) entities.TakeoffLine {
	tags := []string{
		"type:" + string(s.Template.Type),
		"level:" + s.LevelLabel,
		"template:" + s.Template.Name,
	}
	tags = append(tags, s.Instance.Tags...)
	tags = append(tags, s.ExtraTags...)

	resourceKey := s.ResourceKey
	if resourceKey == "" {
		resourceKey = genericResourceKey(s.Trade)
	}

	return entities.TakeoffLine{
		ID:              fmt.Sprintf("tof_%s_%s", s.Instance.ID, s.Kind),
		SourceElementID: s.Instance.ID,
		Trade:           s.Trade,
		ResourceKey:     resourceKey,
		Quantity:        s.Result.Value,
		RawQuantity:     s.Result.Raw,
		Unit:            s.Unit,
		FormulaText:     s.Result.Formula,
		InputsSnapshot:  s.Result.Inputs,
		Assumptions:     s.Assumptions,
		Tags:            tags,
		CalculatedAt:    f.now().UTC(),
	}
}

// genericResourceKey marks lines without a resolved pay item; the BOQ
// aggregator substitutes the trade default and records a warning.
func genericResourceKey(trade entities.Trade) string {
	switch trade {
	case entities.TradeConcrete:
		return "concrete"
	case entities.TradeRebar:
		return "rebar"
	case entities.TradeFormwork:
		return "formwork"
	default:
		return ""
	}
}
