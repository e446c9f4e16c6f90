package response

import (
	"time"

	"kantidad/internal/domain/entities"
)

type CalcRunResponse struct {
	RunID        string                  `json:"run_id"`
	ID           string                  `json:"id"`
	ProjectID    string                  `json:"project_id"`
	Timestamp    time.Time               `json:"timestamp"`
	Status       string                  `json:"status"`
	Summary      entities.CalcRunSummary `json:"summary"`
	TakeoffLines []entities.TakeoffLine  `json:"takeoff_lines"`
	BOQLines     []entities.BOQLine      `json:"boq_lines"`
	Errors       []string                `json:"errors,omitempty"`
	Warnings     []string                `json:"warnings,omitempty"`
}

func FromCalcRun(run entities.CalcRun) CalcRunResponse {
	return CalcRunResponse{
		RunID:        run.ID,
		ID:           run.ID,
		ProjectID:    run.ProjectID,
		Timestamp:    run.Timestamp,
		Status:       string(run.Status),
		Summary:      run.Summary,
		TakeoffLines: run.TakeoffLines,
		BOQLines:     run.BOQLines,
		Errors:       run.Errors,
		Warnings:     run.Warnings,
	}
}

// CalcRunSummaryResponse is the list-view projection: listing a project's
// history never ships the full line sets.
type CalcRunSummaryResponse struct {
	RunID     string                  `json:"run_id"`
	ProjectID string                  `json:"project_id"`
	Timestamp time.Time               `json:"timestamp"`
	Status    string                  `json:"status"`
	Summary   entities.CalcRunSummary `json:"summary"`
	Errors    int                     `json:"error_count"`
	Warnings  int                     `json:"warning_count"`
}

func FromCalcRuns(runs []entities.CalcRun) []CalcRunSummaryResponse {
	out := make([]CalcRunSummaryResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, CalcRunSummaryResponse{
			RunID:     run.ID,
			ProjectID: run.ProjectID,
			Timestamp: run.Timestamp,
			Status:    string(run.Status),
			Summary:   run.Summary,
			Errors:    len(run.Errors),
			Warnings:  len(run.Warnings),
		})
	}
	return out
}
