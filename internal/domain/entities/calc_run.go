package entities

import "time"

// CalcRunStatus reflects whether a run finished cleanly or with accumulated
// errors. A run never aborts because one instance or one group failed.

type CalcRunStatus string

const (
	CalcRunStatusCompleted           CalcRunStatus = "completed"
	CalcRunStatusCompletedWithErrors CalcRunStatus = "completed_with_errors"
)

// CalcRunSummary combines the takeoff and aggregation rollups.

type CalcRunSummary struct {
	Takeoff TakeoffSummary `json:"takeoff"`
	BOQ     BOQSummary     `json:"boq"`
}

// CalcRun is one persisted calculation run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// TakeoffLines/BOQLines are stored as JSON attributes; the run is the unit
// of persistence, individual lines are never updated in place.

type CalcRun struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"project_id"`
	Timestamp    time.Time      `json:"timestamp"`
	Status       CalcRunStatus  `json:"status"`
	Summary      CalcRunSummary `json:"summary"`
	TakeoffLines []TakeoffLine  `json:"takeoff_lines"`
	BOQLines     []BOQLine      `json:"boq_lines"`
	Errors       []string       `json:"errors,omitempty"`
	Warnings     []string       `json:"warnings,omitempty"`
}
