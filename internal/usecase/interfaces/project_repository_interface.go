package interfaces

import (
	"context"

	"kantidad/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for project snapshots.
//
// A zero-ID Project from GetByID means "not found"; the usecase decides
// whether that is an error.

type IProjectRepository interface {
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
}
