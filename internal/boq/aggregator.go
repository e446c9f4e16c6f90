package boq

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"kantidad/internal/domain/entities"
)

// Catalog is the read-only pay-item lookup the aggregator treats as an
// opaque table.

type Catalog interface {
	Lookup(itemNumber string) (entities.PayItem, bool)
}

// AggregateOutput is a best-effort result: a catalog miss drops only the
// affected group, a missing item assignment only downgrades to a default.

type AggregateOutput struct {
	BOQLines []entities.BOQLine
	Warnings []string
	Errors   []string
	Summary  entities.BOQSummary
}

// Trade defaults substituted, with a warning, when a structural line has no
// assigned pay item. Finishes/roofing lines get no default: without a
// dpwh: tag they are skipped.
var tradeDefaultItems = map[entities.Trade]string{
	entities.TradeConcrete: "405(1)a",
	entities.TradeRebar:    "404(1)a",
	entities.TradeFormwork: "903(2)",
}

// genericKeys mark lines whose resource key is a material class rather
// than a resolved pay item.
var genericKeys = map[string]bool{"concrete": true, "rebar": true, "formwork": true}

// Aggregate partitions takeoff lines by trade, resolves each line's pay
// item, groups by item number, and emits one classified BOQLine per group
// with full source traceability.
func Aggregate(lines []entities.TakeoffLine, catalog Catalog) AggregateOutput {
	out := AggregateOutput{}

	type group struct {
		item  string
		lines []entities.TakeoffLine
	}
	var order []string
	groups := map[string]*group{}
	defaulted := map[entities.Trade]int{}
	skipped := map[entities.Trade]int{}

	for _, line := range lines {
		item, ok, usedDefault := resolveItemNumber(line)
		if !ok {
			skipped[line.Trade]++
			out.Summary.SkippedLines++
			continue
		}
		if usedDefault {
			defaulted[line.Trade]++
		}
		g, exists := groups[item]
		if !exists {
			g = &group{item: item}
			groups[item] = g
			order = append(order, item)
		}
		g.lines = append(g.lines, line)
	}

	for trade, n := range defaulted {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"%d %s line(s) had no assigned pay item; defaulted to %s", n, strings.ToLower(string(trade)), tradeDefaultItems[trade]))
	}
	for trade, n := range skipped {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"%d %s line(s) lack a dpwh: item tag and were skipped", n, strings.ToLower(string(trade))))
	}
	sort.Strings(out.Warnings)

	for _, item := range order {
		g := groups[item]

		payItem, found := catalog.Lookup(item)
		if !found {
			// hard error, unlike the soft default above: an assigned but
			// unknown item means the catalog and the project disagree
			out.Errors = append(out.Errors, fmt.Sprintf(
				"pay item %q not found in catalog; dropped group of %d takeoff line(s)", item, len(g.lines)))
			continue
		}

		var sum float64
		sourceIDs := make([]string, 0, len(g.lines))
		for _, line := range g.lines {
			sum += line.Quantity
			sourceIDs = append(sourceIDs, line.ID)
		}
		sort.Strings(sourceIDs)

		decimals := 2
		if strings.Contains(payItem.Unit, "cu.m") {
			decimals = 3
		}

		out.BOQLines = append(out.BOQLines, entities.BOQLine{
			ID:                   boqLineID(item),
			DPWHItemNumberRaw:    item,
			Description:          payItem.Description,
			Unit:                 payItem.Unit,
			Quantity:             roundTo(sum, decimals),
			SourceTakeoffLineIDs: sourceIDs,
			Tags:                 mergeTags(g.lines),
		})
		out.Summary.ItemCount++
		out.Summary.LineCount += len(g.lines)
	}

	return out
}

// resolveItemNumber applies the trade-specific resolution rules: structural
// trades use the line resource key (or dpwh: tag) with a default fallback;
// scheduled trades require a dpwh: tag.
func resolveItemNumber(line entities.TakeoffLine) (item string, ok bool, usedDefault bool) {
	key := strings.TrimSpace(line.ResourceKey)
	if key != "" && !genericKeys[key] {
		return key, true, false
	}
	if tagged := dpwhTag(line.Tags); tagged != "" {
		return tagged, true, false
	}

	switch line.Trade {
	case entities.TradeConcrete, entities.TradeRebar, entities.TradeFormwork:
		return tradeDefaultItems[line.Trade], true, true
	default:
		return "", false, false
	}
}

func dpwhTag(tags []string) string {
	for _, t := range tags {
		if rest, ok := strings.CutPrefix(t, "dpwh:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// mergeTags unions the descriptive tags of a group, re-synthesizing the
// element-type and space/roofPlane/category breakdowns as informational
// count tags.
func mergeTags(lines []entities.TakeoffLine) []string {
	typeCounts := map[string]int{}
	others := map[string]bool{}

	for _, line := range lines {
		for _, t := range line.Tags {
			switch {
			case strings.HasPrefix(t, "type:"):
				typeCounts[strings.TrimPrefix(t, "type:")]++
			case strings.HasPrefix(t, "level:"),
				strings.HasPrefix(t, "space:"),
				strings.HasPrefix(t, "roofPlane:"),
				strings.HasPrefix(t, "category:"):
				others[t] = true
			}
		}
	}

	merged := make([]string, 0, len(typeCounts)+len(others))
	for typ, n := range typeCounts {
		merged = append(merged, fmt.Sprintf("type:%s=%d", typ, n))
	}
	for t := range others {
		merged = append(merged, t)
	}
	sort.Strings(merged)
	return merged
}

func boqLineID(itemNumber string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, itemNumber)
	return "boq_" + sanitized
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
