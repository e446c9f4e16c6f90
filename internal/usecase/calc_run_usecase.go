package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"kantidad/internal/boq"
	"kantidad/internal/domain/entities"
	"kantidad/internal/takeoff"
	"kantidad/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCalcRunNotFound     = errors.New("calc run not found")
	ErrInvalidCalcRunID    = errors.New("invalid calc run id")
	ErrCatalogNotConfigure = errors.New("pay item catalog not configured")
)

// ICalcRunUseCase executes and retrieves calculation runs.
//
// Execute is the composition root of the two engines: structural takeoff
// plus the finishes/roofing schedule path feed the BOQ aggregation, and the
// whole result is persisted as one immutable CalcRun.

type ICalcRunUseCase interface {
	Execute(ctx context.Context, projectID string, overrides *entities.Settings) (entities.CalcRun, error)
	GetByID(ctx context.Context, id string) (entities.CalcRun, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.CalcRun, error)
}

type CalcRunUseCase struct {
	projects interfaces.IProjectRepository
	runs     interfaces.ICalcRunRepository
	catalog  interfaces.IPayItemCatalog
}

var _ ICalcRunUseCase = (*CalcRunUseCase)(nil)

func NewCalcRunUseCase(
	projects interfaces.IProjectRepository,
	runs interfaces.ICalcRunRepository,
	catalog interfaces.IPayItemCatalog,
) *CalcRunUseCase {
	return &CalcRunUseCase{projects: projects, runs: runs, catalog: catalog}
}

func (u *CalcRunUseCase) Execute(ctx context.Context, projectID string, overrides *entities.Settings) (entities.CalcRun, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.CalcRun{}, ErrInvalidProjectID
	}
	if u.catalog == nil {
		return entities.CalcRun{}, ErrCatalogNotConfigure
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.CalcRun{}, err
	}
	if project.ID == "" {
		return entities.CalcRun{}, ErrProjectNotFound
	}

	settings := resolveSettings(project, overrides)
	log.Printf("[calcrun][usecase] execute start project_id=%s instances=%d templates=%d",
		projectID, len(project.ElementInstances), len(project.ElementTemplates))

	structural := takeoff.RunStructuralTakeoff(takeoff.RunInput{
		Instances: project.ElementInstances,
		Templates: project.ElementTemplates,
		Levels:    project.Levels,
		GridX:     project.GridX,
		GridY:     project.GridY,
		Settings:  settings,
	})

	lines := structural.Lines
	lines = append(lines, takeoff.ScheduleTakeoff(project.FinishSchedules, project.RoofPlanes)...)

	aggregated := boq.Aggregate(lines, u.catalog)

	runErrors := append(append([]string{}, structural.Errors...), aggregated.Errors...)
	runWarnings := append(append([]string{}, structural.Warnings...), aggregated.Warnings...)

	status := entities.CalcRunStatusCompleted
	if len(runErrors) > 0 {
		status = entities.CalcRunStatusCompletedWithErrors
	}

	run := entities.CalcRun{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Timestamp: time.Now().UTC(),
		Status:    status,
		Summary: entities.CalcRunSummary{
			Takeoff: structural.Summary,
			BOQ:     aggregated.Summary,
		},
		TakeoffLines: lines,
		BOQLines:     aggregated.BOQLines,
		Errors:       runErrors,
		Warnings:     runWarnings,
	}

	created, err := u.runs.Create(ctx, run)
	if err != nil {
		log.Printf("[calcrun][usecase] persist failed project_id=%s run_id=%s err=%v", projectID, run.ID, err)
		return entities.CalcRun{}, err
	}
	log.Printf("[calcrun][usecase] execute done project_id=%s run_id=%s status=%s lines=%d boq_lines=%d errors=%d warnings=%d",
		projectID, created.ID, created.Status, len(created.TakeoffLines), len(created.BOQLines), len(runErrors), len(runWarnings))
	return created, nil
}

func (u *CalcRunUseCase) GetByID(ctx context.Context, id string) (entities.CalcRun, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalcRun{}, ErrInvalidCalcRunID
	}

	run, err := u.runs.GetByID(ctx, id)
	if err != nil {
		return entities.CalcRun{}, err
	}
	if run.ID == "" {
		return entities.CalcRun{}, ErrCalcRunNotFound
	}
	return run, nil
}

func (u *CalcRunUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.CalcRun, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.runs.ListByProjectID(ctx, projectID)
}

// resolveSettings layers the three sources: per-run overrides beat the
// project snapshot, which beats the environment defaults.
func resolveSettings(project entities.Project, overrides *entities.Settings) entities.Settings {
	if overrides != nil {
		return *overrides
	}
	if project.Settings != nil {
		return *project.Settings
	}
	return defaultSettingsFromEnv()
}

func defaultSettingsFromEnv() entities.Settings {
	s := entities.DefaultSettings()
	s.Waste.Concrete = getenvFloat("TAKEOFF_WASTE_CONCRETE", s.Waste.Concrete)
	s.Waste.Rebar = getenvFloat("TAKEOFF_WASTE_REBAR", s.Waste.Rebar)
	s.Waste.Formwork = getenvFloat("TAKEOFF_WASTE_FORMWORK", s.Waste.Formwork)
	s.Rounding.Concrete = getenvInt("TAKEOFF_ROUND_CONCRETE", s.Rounding.Concrete)
	s.Rounding.Rebar = getenvInt("TAKEOFF_ROUND_REBAR", s.Rounding.Rebar)
	s.Rounding.Formwork = getenvInt("TAKEOFF_ROUND_FORMWORK", s.Rounding.Formwork)
	return s
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
