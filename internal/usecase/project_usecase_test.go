package usecase

import (
	"context"
	"errors"
	"testing"

	"kantidad/internal/domain/entities"
	mock_interfaces "kantidad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validProject() entities.Project {
	return entities.Project{
		Name:  "Two-Storey Office",
		GridX: []entities.GridLine{{Label: "A", Offset: 0}, {Label: "B", Offset: 6}},
		GridY: []entities.GridLine{{Label: "1", Offset: 0}, {Label: "2", Offset: 5}},
		Levels: []entities.Level{
			{Label: "GF", Elevation: 0},
			{Label: "L2", Elevation: 3},
		},
	}
}

func TestProjectUseCase_SaveProject(t *testing.T) {
	t.Run("assigns id and timestamps on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps to be set")
				}
				return p, nil
			})

		saved, err := uc.SaveProject(context.Background(), validProject())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == "" {
			t.Fatalf("expected id on returned project")
		}
	})

	t.Run("keeps existing id on replace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := validProject()
		p.ID = "proj-1"
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Project) (entities.Project, error) {
				if got.ID != "proj-1" {
					t.Fatalf("expected id proj-1, got %q", got.ID)
				}
				return got, nil
			})

		if _, err := uc.SaveProject(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := validProject()
		p.Name = "   "
		_, err := uc.SaveProject(context.Background(), p)
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("duplicate grid label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := validProject()
		p.GridX = append(p.GridX, entities.GridLine{Label: "A", Offset: 12})
		_, err := uc.SaveProject(context.Background(), p)
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("duplicate level label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := validProject()
		p.Levels = append(p.Levels, entities.Level{Label: "GF", Elevation: 6})
		_, err := uc.SaveProject(context.Background(), p)
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("empty grid label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := validProject()
		p.GridY = append(p.GridY, entities.GridLine{Label: "", Offset: 9})
		_, err := uc.SaveProject(context.Background(), p)
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Project{}, errors.New("dynamo down"))
		if _, err := uc.SaveProject(context.Background(), validProject()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", Name: "P"}, nil)
		p, err := uc.GetByID(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "proj-1" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		if _, err := uc.GetByID(context.Background(), "   "); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("zero item means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Project{}, nil)
		if _, err := uc.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
