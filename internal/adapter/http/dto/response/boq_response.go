package response

import (
	"sort"

	"kantidad/internal/boq"
	"kantidad/internal/domain/entities"
)

type BOQLineResponse struct {
	ID                   string   `json:"id"`
	DPWHItemNumber       string   `json:"dpwh_item_number"`
	Description          string   `json:"description"`
	Unit                 string   `json:"unit"`
	Quantity             float64  `json:"quantity"`
	SourceTakeoffLineIDs []string `json:"source_takeoff_line_ids"`
	Tags                 []string `json:"tags,omitempty"`
}

type BOQSectionResponse struct {
	Subcategory string            `json:"subcategory"`
	Lines       []BOQLineResponse `json:"lines"`
}

type BOQPartResponse struct {
	Part     string               `json:"part"`
	Sections []BOQSectionResponse `json:"sections"`
}

// ClassifiedBOQResponse is the report-shaped view of a run's BOQ: parts in
// DPWH display order, subcategories and item numbers sorted within.
type ClassifiedBOQResponse struct {
	RunID     string              `json:"run_id"`
	ProjectID string              `json:"project_id"`
	Status    string              `json:"status"`
	Summary   entities.BOQSummary `json:"summary"`
	Parts     []BOQPartResponse   `json:"parts"`
}

// FromCalcRunBOQ classifies each BOQ line of a run into the part/subcategory
// hierarchy. The trade of a BOQ line is recovered from its source takeoff
// lines, which the run carries alongside.
func FromCalcRunBOQ(run entities.CalcRun) ClassifiedBOQResponse {
	tradeByLineID := make(map[string]entities.Trade, len(run.TakeoffLines))
	for _, line := range run.TakeoffLines {
		tradeByLineID[line.ID] = line.Trade
	}

	type section map[string][]BOQLineResponse
	parts := map[boq.Part]section{}

	for _, line := range run.BOQLines {
		var trade entities.Trade
		for _, src := range line.SourceTakeoffLineIDs {
			if t, ok := tradeByLineID[src]; ok {
				trade = t
				break
			}
		}

		cls := boq.Classify(line.DPWHItemNumberRaw, trade)
		if parts[cls.Part] == nil {
			parts[cls.Part] = section{}
		}
		parts[cls.Part][cls.Subcategory] = append(parts[cls.Part][cls.Subcategory], BOQLineResponse{
			ID:                   line.ID,
			DPWHItemNumber:       line.DPWHItemNumberRaw,
			Description:          line.Description,
			Unit:                 line.Unit,
			Quantity:             line.Quantity,
			SourceTakeoffLineIDs: line.SourceTakeoffLineIDs,
			Tags:                 line.Tags,
		})
	}

	partOrder := make([]boq.Part, 0, len(parts))
	for p := range parts {
		partOrder = append(partOrder, p)
	}
	boq.SortParts(partOrder)

	out := ClassifiedBOQResponse{
		RunID:     run.ID,
		ProjectID: run.ProjectID,
		Status:    string(run.Status),
		Summary:   run.Summary.BOQ,
	}
	for _, p := range partOrder {
		subs := make([]string, 0, len(parts[p]))
		for sub := range parts[p] {
			subs = append(subs, sub)
		}
		sort.Strings(subs)

		partResp := BOQPartResponse{Part: string(p)}
		for _, sub := range subs {
			lines := parts[p][sub]
			sort.Slice(lines, func(i, j int) bool {
				return lines[i].DPWHItemNumber < lines[j].DPWHItemNumber
			})
			partResp.Sections = append(partResp.Sections, BOQSectionResponse{Subcategory: sub, Lines: lines})
		}
		out.Parts = append(out.Parts, partResp)
	}
	return out
}
