package boq

import (
	"testing"

	"kantidad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		trade   entities.Trade
		part    Part
		subcat  string
	}{
		{"concrete pavement stays concrete works", "311(1)a", entities.TradeConcrete, PartD, "Concrete"},
		{"structural concrete", "405(1)a", entities.TradeConcrete, PartD, "Concrete"},
		{"rebar item", "404(1)b", entities.TradeRebar, PartD, "Reinforcing Steel"},
		{"formwork item", "903(2)", entities.TradeFormwork, PartD, "Formworks and Falseworks"},
		{"structure excavation", "803(1)a", entities.TradeEarthwork, PartC, "Earthwork"},
		{"plaster finish", "1027(1)", entities.TradeFinishes, PartE, "Finishing"},
		{"electrical range", "1100(10)", entities.TradeFinishes, PartF, "Electrical & Mechanical"},
		{"drainage range", "505(2)", entities.TradeConcrete, PartG, "Drainage & Miscellaneous"},
		{"roofing trade wins over prefix", "1014(1)b", entities.TradeRoofing, PartF, "Roofing"},
		{"earthwork trade wins over prefix", "404(1)a", entities.TradeEarthwork, PartC, "Earthwork"},
		{"unparseable item falls back to trade", "X-99", entities.TradeConcrete, PartD, "Concrete"},
		{"no item no known trade", "", "", PartOther, "Unclassified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.item, tt.trade)
			assert.Equal(t, tt.part, got.Part)
			assert.Equal(t, tt.subcat, got.Subcategory)
		})
	}
}

func TestSortParts(t *testing.T) {
	parts := []Part{PartG, PartC, PartE}
	SortParts(parts)
	assert.Equal(t, []Part{PartC, PartE, PartG}, parts)
}

func TestSortParts_UnknownLast(t *testing.T) {
	parts := []Part{PartOther, PartF, Part("PART Z"), PartD}
	SortParts(parts)
	assert.Equal(t, []Part{PartD, PartF, PartOther, Part("PART Z")}, parts)
}

func TestPartRank(t *testing.T) {
	assert.Equal(t, 0, PartRank(PartC))
	assert.Equal(t, 4, PartRank(PartG))
	assert.Greater(t, PartRank(PartOther), PartRank(PartG))
}
