package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"toolshub/internal/api/dto"
	"toolshub/internal/api/services"
	"toolshub/internal/api/ws"
	"toolshub/internal/repository"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	toolService     *services.ToolService
	hub             *ws.Hub
}

func NewCategoryHandler(db *sqlx.DB, rdb *redis.Client) *CategoryHandler {
	return &CategoryHandler{
		categoryService: services.NewCategoryService(db),
		toolService:     services.NewToolService(db, rdb),
		hub:             ws.GetHub(),
	}
}

// GetAllCategories godoc
// @Summary List all categories, alphabetical
// @Tags categories
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]dto.Category}
// @Router /api/categories [get]
func (h *CategoryHandler) GetAllCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list categories: %v", err)
		return ErrInternalServerError(c)
	}
	return OK(c, http.StatusOK, dto.CategoriesFromDomain(categories))
}

// GetCategoryBySlug godoc
// @Summary Get one category
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} handlers.Envelope{data=dto.Category}
// @Failure 404 {object} handlers.Envelope
// @Router /api/categories/{slug} [get]
func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "category slug is required")
	}

	category, err := h.categoryService.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrNotFound(c, "category not found")
		}
		c.Logger().Errorf("get category %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	return OK(c, http.StatusOK, dto.CategoryFromDomain(category))
}

// GetCategoryTools godoc
// @Summary Tools in a category, best rated first
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} handlers.Envelope{data=[]dto.Tool}
// @Failure 404 {object} handlers.Envelope
// @Router /api/categories/{slug}/tools [get]
func (h *CategoryHandler) GetCategoryTools(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "category slug is required")
	}

	tools, err := h.toolService.ListByCategory(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrNotFound(c, "category not found")
		}
		c.Logger().Errorf("tools for category %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	return OK(c, http.StatusOK, dto.ToolsFromDomain(tools))
}

// AddCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body dto.AddCategoryRequest true "Category submission"
// @Success 201 {object} handlers.Envelope{data=dto.Category}
// @Failure 400 {object} handlers.Envelope
// @Failure 409 {object} handlers.Envelope
// @Router /api/categories/add [post]
func (h *CategoryHandler) AddCategory(c echo.Context) error {
	var req dto.AddCategoryRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), services.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IconName:    req.IconName,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryExists):
			return ErrConflict(c, "category with this slug or name already exists")
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid category submission")
		default:
			c.Logger().Errorf("create category: %v", err)
			return ErrInternalServerError(c)
		}
	}

	payload := dto.CategoryFromDomain(category)
	h.hub.Broadcast(ws.EventCategoryAdded, payload)

	return OK(c, http.StatusCreated, payload)
}
