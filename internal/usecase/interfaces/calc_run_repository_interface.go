package interfaces

import (
	"context"

	"kantidad/internal/domain/entities"
)

// ICalcRunRepository abstracts DynamoDB persistence for calculation runs.
//
// Runs are immutable once created: one run is persisted whole and never
// updated in place.

type ICalcRunRepository interface {
	Create(ctx context.Context, run entities.CalcRun) (entities.CalcRun, error)
	GetByID(ctx context.Context, id string) (entities.CalcRun, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.CalcRun, error)
}
