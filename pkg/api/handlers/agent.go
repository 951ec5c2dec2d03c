package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/agents"
	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/models"
)

// AgentHandler handles sales agent-related HTTP requests.
type AgentHandler struct {
	agentService *agents.Service
	validator    *validator.Validate
}

// NewAgentHandler creates a new sales agent handler.
func NewAgentHandler(agentService *agents.Service) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		validator:    validator.New(),
	}
}

// Create godoc
// @Summary Create a new sales agent
// @Description Create a sales agent with a unique email
// @Tags Agents
// @Accept json
// @Produce json
// @Param request body models.CreateAgentRequest true "Agent details"
// @Success 201 {object} models.AgentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/agents [post]
func (h *AgentHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	agent, err := h.agentService.Create(ctx, req)
	if err != nil {
		switch err.Error() {
		case "agent with this email already exists":
			return errors.ConflictError(c, "Agent with this email already exists")
		case "invalid phone number":
			return errors.ValidationError(c, "phone must be a valid phone number")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, agent)
}

// List godoc
// @Summary List sales agents
// @Tags Agents
// @Produce json
// @Success 200 {array} models.AgentResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.agentService.List(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a single sales agent
// @Tags Agents
// @Produce json
// @Param id path int true "Agent ID"
// @Success 200 {object} models.AgentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/agents/{id} [get]
func (h *AgentHandler) GetByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	agentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || agentID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid agent ID",
		})
	}

	agent, err := h.agentService.GetByID(ctx, agentID)
	if err != nil {
		if err.Error() == "agent not found" {
			return errors.NotFoundError(c, "Agent")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, agent)
}

// Delete godoc
// @Summary Delete a sales agent
// @Description Delete an agent; fails while the agent still owns leads
// @Tags Agents
// @Param id path int true "Agent ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/agents/{id} [delete]
func (h *AgentHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	agentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || agentID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid agent ID",
		})
	}

	if err := h.agentService.Delete(ctx, agentID); err != nil {
		switch err.Error() {
		case "agent not found":
			return errors.NotFoundError(c, "Agent")
		case "agent still has assigned leads":
			return errors.ConflictError(c, "Agent still has assigned leads; reassign them first")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Agent deleted successfully",
	})
}
