package takeoff

import (
	"fmt"
	"time"

	"kantidad/internal/domain/entities"
)

// ScheduleTakeoff converts the non-structural schedules (finishes, roofing)
// into TakeoffLines under the same contract as the structural path: the
// quantities are already measured, so each entry maps one-to-one onto a
// line carrying its assigned pay item as a dpwh: tag.
func ScheduleTakeoff(finishes []entities.FinishSchedule, roofs []entities.RoofPlane) []entities.TakeoffLine {
	now := time.Now().UTC()
	lines := make([]entities.TakeoffLine, 0, len(finishes)+len(roofs))

	for _, f := range finishes {
		tags := append([]string{"category:finishes", "space:" + f.Name}, f.Tags...)
		if f.DPWHItem != "" {
			tags = append(tags, "dpwh:"+f.DPWHItem)
		}
		unit := f.Unit
		if unit == "" {
			unit = "sq.m"
		}
		lines = append(lines, entities.TakeoffLine{
			ID:              fmt.Sprintf("tof_%s_%s", f.ID, entities.KindFinish),
			SourceElementID: f.ID,
			Trade:           entities.TradeFinishes,
			ResourceKey:     f.DPWHItem,
			Quantity:        f.Quantity,
			RawQuantity:     f.Quantity,
			Unit:            unit,
			FormulaText:     fmt.Sprintf("scheduled quantity for %q = %.2f %s", f.Name, f.Quantity, unit),
			InputsSnapshot:  map[string]float64{"quantity": f.Quantity},
			Tags:            tags,
			CalculatedAt:    now,
		})
	}

	for _, r := range roofs {
		tags := append([]string{"category:roofing", "roofPlane:" + r.Name}, r.Tags...)
		if r.DPWHItem != "" {
			tags = append(tags, "dpwh:"+r.DPWHItem)
		}
		lines = append(lines, entities.TakeoffLine{
			ID:              fmt.Sprintf("tof_%s_%s", r.ID, entities.KindRoofing),
			SourceElementID: r.ID,
			Trade:           entities.TradeRoofing,
			ResourceKey:     r.DPWHItem,
			Quantity:        r.Area,
			RawQuantity:     r.Area,
			Unit:            "sq.m",
			FormulaText:     fmt.Sprintf("measured roof plane %q = %.2f sq.m", r.Name, r.Area),
			InputsSnapshot:  map[string]float64{"area": r.Area},
			Tags:            tags,
			CalculatedAt:    now,
		})
	}

	return lines
}
