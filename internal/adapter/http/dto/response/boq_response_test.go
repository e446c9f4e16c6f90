package response

import (
	"testing"

	"kantidad/internal/domain/entities"
)

func classifiedRun() entities.CalcRun {
	return entities.CalcRun{
		ID:        "run-1",
		ProjectID: "proj-1",
		Status:    entities.CalcRunStatusCompleted,
		TakeoffLines: []entities.TakeoffLine{
			{ID: "tof_b1_concrete", Trade: entities.TradeConcrete},
			{ID: "tof_b1_rebar_main", Trade: entities.TradeRebar},
			{ID: "tof_roof-1_roofing", Trade: entities.TradeRoofing},
			{ID: "tof_fin-1_finish", Trade: entities.TradeFinishes},
		},
		BOQLines: []entities.BOQLine{
			{ID: "boq_1014_1_b", DPWHItemNumberRaw: "1014(1)b", Quantity: 120, SourceTakeoffLineIDs: []string{"tof_roof-1_roofing"}},
			{ID: "boq_404_1_b", DPWHItemNumberRaw: "404(1)b", Quantity: 39.05, SourceTakeoffLineIDs: []string{"tof_b1_rebar_main"}},
			{ID: "boq_405_1_a", DPWHItemNumberRaw: "405(1)a", Quantity: 0.945, SourceTakeoffLineIDs: []string{"tof_b1_concrete"}},
			{ID: "boq_1027_1", DPWHItemNumberRaw: "1027(1)", Quantity: 50, SourceTakeoffLineIDs: []string{"tof_fin-1_finish"}},
		},
	}
}

func TestFromCalcRunBOQ(t *testing.T) {
	resp := FromCalcRunBOQ(classifiedRun())

	if resp.RunID != "run-1" || resp.ProjectID != "proj-1" {
		t.Fatalf("run identity not carried: %+v", resp)
	}

	if len(resp.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(resp.Parts))
	}
	// fixed display order: concrete works, finishing, then roofing
	if resp.Parts[0].Part != "PART D" || resp.Parts[1].Part != "PART E" || resp.Parts[2].Part != "PART F" {
		t.Fatalf("unexpected part order: %+v", resp.Parts)
	}

	partD := resp.Parts[0]
	if len(partD.Sections) != 2 {
		t.Fatalf("expected concrete and rebar sections, got %+v", partD.Sections)
	}
	// subcategories alphabetical within a part
	if partD.Sections[0].Subcategory != "Concrete" || partD.Sections[1].Subcategory != "Reinforcing Steel" {
		t.Fatalf("unexpected subcategory order: %+v", partD.Sections)
	}
	if partD.Sections[0].Lines[0].DPWHItemNumber != "405(1)a" {
		t.Fatalf("unexpected line: %+v", partD.Sections[0].Lines)
	}

	roofing := resp.Parts[2]
	if roofing.Sections[0].Subcategory != "Roofing" {
		t.Fatalf("expected roofing subcategory, got %+v", roofing.Sections)
	}
}

func TestFromCalcRunBOQ_Empty(t *testing.T) {
	resp := FromCalcRunBOQ(entities.CalcRun{ID: "run-empty"})
	if len(resp.Parts) != 0 {
		t.Fatalf("expected no parts, got %+v", resp.Parts)
	}
}
