package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/comments"
	"github.com/avillega/leadtrail/pkg/metrics"
	"github.com/avillega/leadtrail/pkg/models"
)

// CommentHandler handles lead comment HTTP requests.
type CommentHandler struct {
	commentService *comments.Service
	metrics        *metrics.Metrics
	validator      *validator.Validate
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService *comments.Service, m *metrics.Metrics) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		metrics:        m,
		validator:      validator.New(),
	}
}

// Create godoc
// @Summary Add a comment to a lead
// @Description Add a comment to a lead on behalf of a sales agent
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body models.CreateCommentRequest true "Comment details"
// @Success 201 {object} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	comment, err := h.commentService.Create(ctx, leadID, req)
	if err != nil {
		switch err.Error() {
		case "lead not found":
			return errors.NotFoundError(c, "Lead")
		case "sales agent not found":
			return errors.NotFoundError(c, "Sales agent")
		}
		return errors.InternalError(c, err)
	}

	h.metrics.CommentsCreated.Inc()

	return c.JSON(http.StatusCreated, comment)
}

// ListByLead godoc
// @Summary List comments on a lead
// @Description List all comments for a lead, newest first
// @Tags Comments
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads/{id}/comments [get]
func (h *CommentHandler) ListByLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	result, err := h.commentService.ListByLead(ctx, leadID)
	if err != nil {
		if err.Error() == "lead not found" {
			return errors.NotFoundError(c, "Lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
