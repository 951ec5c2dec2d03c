package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/report"
)

// ReportHandler handles sales report HTTP requests.
type ReportHandler struct {
	reportService *report.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService *report.Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// LastWeek godoc
// @Summary Leads closed last week
// @Description List leads closed during the trailing seven days
// @Tags Reports
// @Produce json
// @Success 200 {object} models.LastWeekReportResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/report/last-week [get]
func (h *ReportHandler) LastWeek(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.reportService.LastWeek(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Pipeline godoc
// @Summary Leads in the pipeline
// @Description Count leads that are not yet closed, broken down by status
// @Tags Reports
// @Produce json
// @Success 200 {object} models.PipelineReportResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/report/pipeline [get]
func (h *ReportHandler) Pipeline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.reportService.Pipeline(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ClosedByAgent godoc
// @Summary Closed leads grouped by agent
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ClosedByAgentReportResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/report/closed-by-agent [get]
func (h *ReportHandler) ClosedByAgent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.reportService.ClosedByAgent(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
