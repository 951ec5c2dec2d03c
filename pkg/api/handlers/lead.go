package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/metrics"
	"github.com/avillega/leadtrail/pkg/models"
)

// LeadHandler handles lead-related HTTP requests.
type LeadHandler struct {
	leadService *leads.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService *leads.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Create a new lead
// @Description Create a new lead assigned to an existing sales agent
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.CreateLeadRequest true "Lead details"
// @Success 201 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	lead, err := h.leadService.Create(ctx, req)
	if err != nil {
		if err.Error() == "sales agent not found" {
			return errors.NotFoundError(c, "Sales agent")
		}
		return errors.InternalError(c, err)
	}

	h.metrics.LeadsCreated.Inc()

	return c.JSON(http.StatusCreated, lead)
}

// List godoc
// @Summary List leads
// @Description List leads filtered by agent, status, source, priority or tag
// @Tags Leads
// @Produce json
// @Param sales_agent query int false "Sales agent ID"
// @Param status query string false "Lead status" Enums(new, contacted, qualified, proposal_sent, closed)
// @Param source query string false "Lead source" Enums(website, referral, cold_call, advertisement, email, other)
// @Param priority query string false "Lead priority" Enums(high, medium, low)
// @Param tag query string false "Tag label"
// @Param sort_by query string false "Sort field" Enums(created_at, time_to_close, priority)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} models.LeadListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	result, err := h.leadService.List(ctx, req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a single lead
// @Description Get a lead by ID
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/{id} [get]
func (h *LeadHandler) GetByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	lead, err := h.leadService.GetByID(ctx, leadID)
	if err != nil {
		if err.Error() == "lead not found" {
			return errors.NotFoundError(c, "Lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}

// Update godoc
// @Summary Update a lead
// @Description Partially update a lead; status transitions maintain closed_at
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body models.UpdateLeadRequest true "Update details"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/{id} [patch]
func (h *LeadHandler) Update(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	lead, err := h.leadService.Update(ctx, leadID, req)
	if err != nil {
		switch err.Error() {
		case "lead not found":
			return errors.NotFoundError(c, "Lead")
		case "sales agent not found":
			return errors.NotFoundError(c, "Sales agent")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}

// Delete godoc
// @Summary Delete a lead
// @Description Delete a lead and its comments
// @Tags Leads
// @Param id path int true "Lead ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	if err := h.leadService.Delete(ctx, leadID); err != nil {
		if err.Error() == "lead not found" {
			return errors.NotFoundError(c, "Lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Lead deleted successfully",
	})
}
