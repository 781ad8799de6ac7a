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

type ToolHandler struct {
	toolService *services.ToolService
	hub         *ws.Hub
}

func NewToolHandler(db *sqlx.DB, rdb *redis.Client) *ToolHandler {
	return &ToolHandler{
		toolService: services.NewToolService(db, rdb),
		hub:         ws.GetHub(),
	}
}

// GetAllTools godoc
// @Summary List all tools
// @Tags tools
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]dto.Tool}
// @Router /api/tools [get]
func (h *ToolHandler) GetAllTools(c echo.Context) error {
	tools, err := h.toolService.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list tools: %v", err)
		return ErrInternalServerError(c)
	}
	return OK(c, http.StatusOK, dto.ToolsFromDomain(tools))
}

// GetFeaturedTools godoc
// @Summary Top-rated tools for the landing page
// @Tags tools
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]dto.Tool}
// @Router /api/tools/featured [get]
func (h *ToolHandler) GetFeaturedTools(c echo.Context) error {
	tools, err := h.toolService.Featured(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("featured tools: %v", err)
		return ErrInternalServerError(c)
	}
	return OK(c, http.StatusOK, dto.ToolsFromDomain(tools))
}

// GetToolBySlug godoc
// @Summary Get one tool with its comments
// @Tags tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} handlers.Envelope{data=dto.Tool}
// @Failure 404 {object} handlers.Envelope
// @Router /api/tools/{slug} [get]
func (h *ToolHandler) GetToolBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "tool slug is required")
	}

	tool, comments, err := h.toolService.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		c.Logger().Errorf("get tool %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	return OK(c, http.StatusOK, dto.ToolFromDomain(tool, comments))
}

// GetRelatedTools godoc
// @Summary Up to three companion tools, same category first
// @Tags tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} handlers.Envelope{data=[]dto.Tool}
// @Failure 404 {object} handlers.Envelope
// @Router /api/tools/{slug}/related [get]
func (h *ToolHandler) GetRelatedTools(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "tool slug is required")
	}

	related, err := h.toolService.Related(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		c.Logger().Errorf("related tools for %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	return OK(c, http.StatusOK, dto.ToolsFromDomain(related))
}

// AddTool godoc
// @Summary Create a tool
// @Tags tools
// @Accept json
// @Produce json
// @Security Bearer
// @Param tool body dto.AddToolRequest true "Tool submission"
// @Success 201 {object} handlers.Envelope{data=dto.Tool}
// @Failure 400 {object} handlers.Envelope
// @Failure 409 {object} handlers.Envelope
// @Router /api/tools/add [post]
func (h *ToolHandler) AddTool(c echo.Context) error {
	var req dto.AddToolRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	steps := make([]string, len(req.UsageSteps))
	for i, s := range req.UsageSteps {
		steps[i] = s.Text
	}

	tool, err := h.toolService.Create(c.Request().Context(), services.CreateToolInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Image:          req.Image,
		CategorySlug:   req.CategorySlug,
		IsFree:         *req.IsFree,
		Rating:         *req.Rating,
		Summary:        req.Summary,
		Description:    req.Description,
		UsageSteps:     steps,
		WebsiteLink:    req.WebsiteLink,
		Tags:           req.Tags,
		RelatedToolIDs: req.RelatedToolIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrToolExists):
			return ErrConflict(c, "tool with this slug already exists")
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "name does not produce a usable slug")
		default:
			c.Logger().Errorf("create tool: %v", err)
			return ErrInternalServerError(c)
		}
	}

	payload := dto.ToolFromDomain(tool, nil)
	h.hub.Broadcast(ws.EventToolAdded, payload)

	return OK(c, http.StatusCreated, payload)
}
