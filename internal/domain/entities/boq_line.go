package entities

// BOQLine is one aggregated, classified bill-of-quantities row.
//
// It is derived entirely from a group of TakeoffLines sharing a resolved pay
// item and is never hand-edited. SourceTakeoffLineIDs is a weak reference
// kept purely for traceability.

type BOQLine struct {
	ID                   string   `json:"id"`
	DPWHItemNumberRaw    string   `json:"dpwh_item_number_raw"`
	Description          string   `json:"description"`
	Unit                 string   `json:"unit"`
	Quantity             float64  `json:"quantity"`
	SourceTakeoffLineIDs []string `json:"source_takeoff_line_ids"`
	Tags                 []string `json:"tags,omitempty"`
}

// BOQSummary rolls up one aggregation pass.

type BOQSummary struct {
	LineCount    int `json:"line_count"`
	ItemCount    int `json:"item_count"`
	SkippedLines int `json:"skipped_lines"`
}
