package boq

import (
	"sort"
	"strconv"
	"strings"

	"kantidad/internal/domain/entities"
)

// Part is the top level of the DPWH classification hierarchy. The sort
// order below is a published contract: reports depend on it being stable
// and total, so it is an explicit integer rank, never a string comparison.

type Part string

const (
	PartC     Part = "PART C" // Earthwork
	PartD     Part = "PART D" // Concrete Works
	PartE     Part = "PART E" // Finishing Works
	PartF     Part = "PART F" // Metal & Electrical
	PartG     Part = "PART G" // Marine & Other
	PartOther Part = "OTHER"
)

var partRanks = map[Part]int{
	PartC: 0,
	PartD: 1,
	PartE: 2,
	PartF: 3,
	PartG: 4,
}

const unknownPartRank = 5

// PartRank returns the display rank of a part; unknown parts sort last,
// deterministically.
func PartRank(p Part) int {
	if r, ok := partRanks[p]; ok {
		return r
	}
	return unknownPartRank
}

// SortParts orders parts C < D < E < F < G < other, in place.
func SortParts(parts []Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		ri, rj := PartRank(parts[i]), PartRank(parts[j])
		if ri != rj {
			return ri < rj
		}
		return parts[i] < parts[j]
	})
}

// Classification locates a pay item in the part/subcategory hierarchy.

type Classification struct {
	Part        Part
	Subcategory string
}

// Classify maps a raw pay-item number plus its trade to the fixed
// hierarchy. Roofing and earthwork trades classify directly; everything
// else goes by the catalog item-number prefix with the trade as fallback.
func Classify(itemNumberRaw string, trade entities.Trade) Classification {
	switch trade {
	case entities.TradeRoofing:
		return Classification{Part: PartF, Subcategory: "Roofing"}
	case entities.TradeEarthwork:
		return Classification{Part: PartC, Subcategory: "Earthwork"}
	}

	if n, ok := leadingItemNumber(itemNumberRaw); ok {
		switch {
		case n >= 100 && n < 300:
			return Classification{Part: PartC, Subcategory: "Earthwork"}
		case n >= 300 && n < 500:
			return Classification{Part: PartD, Subcategory: concreteSubcategory(trade)}
		case n >= 500 && n < 600:
			return Classification{Part: PartG, Subcategory: "Drainage & Miscellaneous"}
		case n >= 800 && n < 900:
			return Classification{Part: PartC, Subcategory: "Earthwork"}
		case n >= 900 && n < 1000:
			return Classification{Part: PartD, Subcategory: concreteSubcategory(trade)}
		case n >= 1000 && n < 1100:
			return Classification{Part: PartE, Subcategory: "Finishing"}
		case n >= 1100 && n < 1300:
			return Classification{Part: PartF, Subcategory: "Electrical & Mechanical"}
		}
	}

	switch trade {
	case entities.TradeConcrete, entities.TradeRebar, entities.TradeFormwork:
		return Classification{Part: PartD, Subcategory: concreteSubcategory(trade)}
	case entities.TradeFinishes:
		return Classification{Part: PartE, Subcategory: "Finishing"}
	default:
		return Classification{Part: PartOther, Subcategory: "Unclassified"}
	}
}

func concreteSubcategory(trade entities.Trade) string {
	switch trade {
	case entities.TradeRebar:
		return "Reinforcing Steel"
	case entities.TradeFormwork:
		return "Formworks and Falseworks"
	default:
		return "Concrete"
	}
}

// leadingItemNumber parses the numeric prefix of an item number such as
// "404(1)a" or "1003(1)a1".
func leadingItemNumber(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
