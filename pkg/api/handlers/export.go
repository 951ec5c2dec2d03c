package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/export"
	"github.com/avillega/leadtrail/pkg/metrics"
	"github.com/avillega/leadtrail/pkg/models"
)

// ExportHandler handles lead export HTTP requests.
type ExportHandler struct {
	exportService *export.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		metrics:       m,
		validator:     validator.New(),
	}
}

// Export godoc
// @Summary Export leads
// @Description Download leads matching the given filters as CSV or Excel
// @Tags Leads
// @Produce octet-stream
// @Param format query string false "File format" Enums(csv, excel) default(csv)
// @Param sales_agent query int false "Sales agent ID"
// @Param status query string false "Lead status"
// @Param source query string false "Lead source"
// @Param priority query string false "Lead priority"
// @Param tag query string false "Tag label"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/export [get]
func (h *ExportHandler) Export(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	format := c.QueryParam("format")
	if format == "" {
		format = string(export.FormatCSV)
	}
	if format != string(export.FormatCSV) && format != string(export.FormatExcel) {
		return errors.ValidationError(c, "format must be one of: csv, excel")
	}

	var filters models.LeadListRequest
	if err := c.Bind(&filters); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(filters); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	file, err := h.exportService.Generate(ctx, export.Format(format), filters)
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.metrics.ExportsGenerated.WithLabelValues(format).Inc()

	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	return c.Blob(200, file.ContentType, file.Data)
}
