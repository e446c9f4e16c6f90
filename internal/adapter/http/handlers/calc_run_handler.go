package handlers

import (
	"errors"
	"io"
	"net/http"

	request "kantidad/internal/adapter/http/dto/request"
	response "kantidad/internal/adapter/http/dto/response"
	"kantidad/internal/usecase"
	"kantidad/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalcRunPayload = pkg.NewDomainErrorSimple("INVALID_CALC_RUN_INPUT", "Invalid calc run payload", http.StatusBadRequest)
)

// CalcRunHandler handles HTTP requests for calculation runs.

type CalcRunHandler struct {
	usecase usecase.ICalcRunUseCase
}

func NewCalcRunHandler(uc usecase.ICalcRunUseCase) *CalcRunHandler {
	return &CalcRunHandler{usecase: uc}
}

// ExecuteCalcRun runs the takeoff and BOQ engines against a project
// snapshot and persists the result. The body is optional; when present it
// may carry per-run settings overrides.
func (h *CalcRunHandler) ExecuteCalcRun(c *gin.Context) {
	var payload request.CalcRunRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCalcRunPayload.HTTPStatus, errInvalidCalcRunPayload.ToHTTPError())
		return
	}

	run, err := h.usecase.Execute(c.Request.Context(), c.Param("project_id"), payload.ResolveOverrides())
	if err != nil {
		appErr := mapCalcRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalcRun(run))
}

func (h *CalcRunHandler) GetCalcRun(c *gin.Context) {
	run, err := h.usecase.GetByID(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapCalcRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalcRun(run))
}

func (h *CalcRunHandler) ListCalcRuns(c *gin.Context) {
	runs, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapCalcRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalcRuns(runs))
}

// GetCalcRunBOQ returns the run's BOQ classified into the DPWH
// part/subcategory hierarchy, parts in display order.
func (h *CalcRunHandler) GetCalcRunBOQ(c *gin.Context) {
	run, err := h.usecase.GetByID(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapCalcRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalcRunBOQ(run))
}

func mapCalcRunError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidCalcRunID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCalcRunNotFound):
		return pkg.NewDomainErrorSimple("CALC_RUN_NOT_FOUND", "Calc run not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogNotConfigure):
		return pkg.NewDomainErrorSimple("CATALOG_NOT_CONFIGURED", "Pay item catalog not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
