package routes

import (
	"kantidad/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathCalcRuns = "/calc-runs"
)

func addTakeoffRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, calcRunHandler *handlers.CalcRunHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.SaveProject)
		projects.GET("/:project_id", projectHandler.GetProject)
		projects.POST("/:project_id/calc-runs", calcRunHandler.ExecuteCalcRun)
		projects.GET("/:project_id/calc-runs", calcRunHandler.ListCalcRuns)
	}

	calcRuns := rg.Group(PathCalcRuns)
	{
		calcRuns.GET("/:run_id", calcRunHandler.GetCalcRun)
		calcRuns.GET("/:run_id/boq", calcRunHandler.GetCalcRunBOQ)
	}
}
