package catalog

import (
	"strings"

	"kantidad/internal/domain/entities"
)

// StaticCatalog is an in-memory DPWH pay-item table. The aggregation engine
// only ever sees the Lookup contract; where the table comes from is not its
// concern.

type StaticCatalog struct {
	items map[string]entities.PayItem
}

func New(items []entities.PayItem) *StaticCatalog {
	c := &StaticCatalog{items: make(map[string]entities.PayItem, len(items))}
	for _, it := range items {
		c.items[it.ItemNumber] = it
	}
	return c
}

func (c *StaticCatalog) Lookup(itemNumber string) (entities.PayItem, bool) {
	it, ok := c.items[strings.TrimSpace(itemNumber)]
	return it, ok
}

// NewDefault loads the built-in subset of the DPWH pay-item catalog used by
// building estimates.
func NewDefault() *StaticCatalog {
	return New(defaultItems)
}

var defaultItems = []entities.PayItem{
	// Part C — earthwork
	{ItemNumber: "803(1)a", Description: "Structure Excavation, Common Soil", Unit: "cu.m", Trade: entities.TradeEarthwork},
	{ItemNumber: "804(1)a", Description: "Embankment from Structure Excavation", Unit: "cu.m", Trade: entities.TradeEarthwork},
	{ItemNumber: "804(4)", Description: "Gravel Fill", Unit: "cu.m", Trade: entities.TradeEarthwork},

	// Part D — concrete works
	{ItemNumber: "311(1)a", Description: "Portland Cement Concrete Pavement, 150mm thk", Unit: "sq.m", Trade: entities.TradeConcrete},
	{ItemNumber: "405(1)a", Description: "Structural Concrete, Class A, 20.68 MPa", Unit: "cu.m", Trade: entities.TradeConcrete},
	{ItemNumber: "405(1)b", Description: "Structural Concrete, Class A, 27.58 MPa", Unit: "cu.m", Trade: entities.TradeConcrete},
	{ItemNumber: "404(1)a", Description: "Reinforcing Steel, Deformed, Grade 40", Unit: "kg", Trade: entities.TradeRebar},
	{ItemNumber: "404(1)b", Description: "Reinforcing Steel, Deformed, Grade 60", Unit: "kg", Trade: entities.TradeRebar},
	{ItemNumber: "900(1)c", Description: "Structural Concrete for Footing and Slab on Fill", Unit: "cu.m", Trade: entities.TradeConcrete},
	{ItemNumber: "902(1)a", Description: "Reinforcing Steel of Reinforced Concrete Structures", Unit: "kg", Trade: entities.TradeRebar},
	{ItemNumber: "903(2)", Description: "Formworks and Falseworks", Unit: "sq.m", Trade: entities.TradeFormwork},

	// Part E — finishing works
	{ItemNumber: "1003(1)a1", Description: "Ceiling, 4.5mm Fiber Cement Board on Metal Frame", Unit: "sq.m", Trade: entities.TradeFinishes},
	{ItemNumber: "1018(1)", Description: "Glazed Tiles and Trims", Unit: "sq.m", Trade: entities.TradeFinishes},
	{ItemNumber: "1021(1)a", Description: "Cement Floor Finish, Plain", Unit: "sq.m", Trade: entities.TradeFinishes},
	{ItemNumber: "1027(1)", Description: "Cement Plaster Finish", Unit: "sq.m", Trade: entities.TradeFinishes},
	{ItemNumber: "1032(1)a", Description: "Painting Works, Masonry/Concrete", Unit: "sq.m", Trade: entities.TradeFinishes},

	// Part F — metal & roofing
	{ItemNumber: "1013(2)a", Description: "Fabricated Metal Roofing Accessory, Ridge Roll", Unit: "m", Trade: entities.TradeRoofing},
	{ItemNumber: "1014(1)b", Description: "Prepainted Metal Sheets, Rib Type, Long Span", Unit: "sq.m", Trade: entities.TradeRoofing},
	{ItemNumber: "1100(10)", Description: "Conduits, Boxes and Fittings", Unit: "l.s.", Trade: entities.TradeFinishes},
}
