package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/avillega/leadtrail/pkg/api/errors"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/avillega/leadtrail/pkg/tags"
)

// TagHandler handles tag-related HTTP requests.
type TagHandler struct {
	tagService *tags.Service
	validator  *validator.Validate
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService *tags.Service) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		validator:  validator.New(),
	}
}

// Create godoc
// @Summary Create a new tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param request body models.CreateTagRequest true "Tag details"
// @Success 201 {object} models.TagResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return errors.BindError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	tag, err := h.tagService.Create(ctx, req)
	if err != nil {
		if err.Error() == "tag already exists" {
			return errors.ConflictError(c, "Tag already exists")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, tag)
}

// List godoc
// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {array} models.TagResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/tags [get]
func (h *TagHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.tagService.List(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
