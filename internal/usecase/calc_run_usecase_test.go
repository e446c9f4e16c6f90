package usecase

import (
	"context"
	"errors"
	"testing"

	"kantidad/internal/catalog"
	"kantidad/internal/domain/entities"
	mock_interfaces "kantidad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func calcRunProject() entities.Project {
	return entities.Project{
		ID:    "proj-1",
		Name:  "Two-Storey Office",
		GridX: []entities.GridLine{{Label: "A", Offset: 0}, {Label: "B", Offset: 6}},
		GridY: []entities.GridLine{{Label: "1", Offset: 0}, {Label: "2", Offset: 5}},
		Levels: []entities.Level{
			{Label: "GF", Elevation: 0},
			{Label: "L2", Elevation: 3},
		},
		ElementTemplates: []entities.ElementTemplate{{
			ID: "tpl-b", Type: entities.ElementTypeBeam, Name: "B-1",
			Properties: map[string]float64{"width": 0.30, "height": 0.50},
		}},
		ElementInstances: []entities.ElementInstance{{
			ID: "b1", TemplateID: "tpl-b",
			Placement: entities.Placement{LevelID: "GF", GridRef: []string{"A-B", "1"}},
		}},
		FinishSchedules: []entities.FinishSchedule{{
			ID: "fin-1", Name: "Lobby", Quantity: 50, Unit: "sq.m", DPWHItem: "1027(1)",
		}},
	}
}

func newCalcRunFixture(t *testing.T) (*CalcRunUseCase, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockICalcRunRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	runs := mock_interfaces.NewMockICalcRunRepository(ctrl)
	return NewCalcRunUseCase(projects, runs, catalog.NewDefault()), projects, runs
}

func TestCalcRunUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, projects, runs := newCalcRunFixture(t)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(calcRunProject(), nil)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, run entities.CalcRun) (entities.CalcRun, error) {
				return run, nil
			})

		run, err := uc.Execute(context.Background(), "proj-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.ID == "" {
			t.Fatalf("expected generated run id")
		}
		if run.ProjectID != "proj-1" {
			t.Fatalf("unexpected project id %q", run.ProjectID)
		}
		if run.Status != entities.CalcRunStatusCompleted {
			t.Fatalf("expected completed, got %s", run.Status)
		}
		// beam concrete + formwork plus the scheduled finish line
		if len(run.TakeoffLines) != 3 {
			t.Fatalf("expected 3 takeoff lines, got %d", len(run.TakeoffLines))
		}
		if len(run.BOQLines) == 0 {
			t.Fatalf("expected boq lines")
		}
		if run.Summary.Takeoff.LineCount != 2 {
			t.Fatalf("expected structural line count 2, got %d", run.Summary.Takeoff.LineCount)
		}
	})

	t.Run("errors downgrade status", func(t *testing.T) {
		uc, projects, runs := newCalcRunFixture(t)

		p := calcRunProject()
		p.ElementInstances = append(p.ElementInstances, entities.ElementInstance{
			ID: "orphan", TemplateID: "missing",
			Placement: entities.Placement{LevelID: "GF"},
		})
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(p, nil)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, run entities.CalcRun) (entities.CalcRun, error) {
				return run, nil
			})

		run, err := uc.Execute(context.Background(), "proj-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.Status != entities.CalcRunStatusCompletedWithErrors {
			t.Fatalf("expected completed_with_errors, got %s", run.Status)
		}
		if len(run.Errors) != 1 {
			t.Fatalf("expected 1 accumulated error, got %d: %v", len(run.Errors), run.Errors)
		}
	})

	t.Run("settings overrides win over project settings", func(t *testing.T) {
		uc, projects, runs := newCalcRunFixture(t)

		p := calcRunProject()
		p.Settings = &entities.Settings{
			Waste:    entities.WasteSettings{Concrete: 0.10},
			Rounding: entities.RoundingSettings{Concrete: 3, Rebar: 2, Formwork: 2},
		}
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(p, nil)

		overrides := entities.DefaultSettings()
		overrides.Waste.Concrete = 0 // no waste at all

		var captured entities.CalcRun
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, run entities.CalcRun) (entities.CalcRun, error) {
				captured = run
				return run, nil
			})

		if _, err := uc.Execute(context.Background(), "proj-1", &overrides); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 0.30 × 0.50 × 6m with zero waste
		var concrete float64
		for _, l := range captured.TakeoffLines {
			if l.ID == "tof_b1_concrete" {
				concrete = l.Quantity
			}
		}
		if concrete != 0.9 {
			t.Fatalf("expected 0.9 cu.m with zero waste, got %v", concrete)
		}
	})

	t.Run("blank project id", func(t *testing.T) {
		uc, _, _ := newCalcRunFixture(t)
		if _, err := uc.Execute(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		uc, projects, _ := newCalcRunFixture(t)
		projects.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Project{}, nil)
		if _, err := uc.Execute(context.Background(), "ghost", nil); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("missing catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		runs := mock_interfaces.NewMockICalcRunRepository(ctrl)
		uc := NewCalcRunUseCase(projects, runs, nil)

		if _, err := uc.Execute(context.Background(), "proj-1", nil); !errors.Is(err, ErrCatalogNotConfigure) {
			t.Fatalf("expected ErrCatalogNotConfigure, got %v", err)
		}
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		uc, projects, runs := newCalcRunFixture(t)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(calcRunProject(), nil)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CalcRun{}, errors.New("dynamo down"))

		if _, err := uc.Execute(context.Background(), "proj-1", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCalcRunUseCase_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, _, runs := newCalcRunFixture(t)
		runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.CalcRun{ID: "run-1"}, nil)

		run, err := uc.GetByID(context.Background(), "run-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.ID != "run-1" {
			t.Fatalf("unexpected run: %+v", run)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _, _ := newCalcRunFixture(t)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidCalcRunID) {
			t.Fatalf("expected ErrInvalidCalcRunID, got %v", err)
		}
	})

	t.Run("zero item means not found", func(t *testing.T) {
		uc, _, runs := newCalcRunFixture(t)
		runs.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.CalcRun{}, nil)
		if _, err := uc.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrCalcRunNotFound) {
			t.Fatalf("expected ErrCalcRunNotFound, got %v", err)
		}
	})
}

func TestCalcRunUseCase_ListByProjectID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, _, runs := newCalcRunFixture(t)
		runs.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.CalcRun{{ID: "run-1"}, {ID: "run-2"}}, nil)

		got, err := uc.ListByProjectID(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(got))
		}
	})

	t.Run("blank project id", func(t *testing.T) {
		uc, _, _ := newCalcRunFixture(t)
		if _, err := uc.ListByProjectID(context.Background(), ""); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}
