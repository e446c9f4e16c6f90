package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kantidad/internal/domain/entities"
	"kantidad/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidProject   = errors.New("invalid project")
)

// IProjectUseCase exposes project snapshot operations. The snapshot is the
// single input of the calculation engines, so duplicate grid or level
// labels are rejected here: the resolvers are label-keyed.

type IProjectUseCase interface {
	SaveProject(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) SaveProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	if err := validateLabels(p); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func validateLabels(p entities.Project) error {
	if err := uniqueGridLabels("x", p.GridX); err != nil {
		return err
	}
	if err := uniqueGridLabels("y", p.GridY); err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, l := range p.Levels {
		if l.Label == "" {
			return fmt.Errorf("%w: level with empty label", ErrInvalidProject)
		}
		if seen[l.Label] {
			return fmt.Errorf("%w: duplicate level label %q", ErrInvalidProject, l.Label)
		}
		seen[l.Label] = true
	}
	return nil
}

func uniqueGridLabels(axis string, lines []entities.GridLine) error {
	seen := map[string]bool{}
	for _, g := range lines {
		if g.Label == "" {
			return fmt.Errorf("%w: %s-axis grid line with empty label", ErrInvalidProject, axis)
		}
		if seen[g.Label] {
			return fmt.Errorf("%w: duplicate %s-axis grid label %q", ErrInvalidProject, axis, g.Label)
		}
		seen[g.Label] = true
	}
	return nil
}
