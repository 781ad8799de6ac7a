package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"toolshub/internal/api/dto"
	"toolshub/internal/api/services"
	"toolshub/internal/api/ws"
	"toolshub/internal/repository"
)

type CommentHandler struct {
	commentService *services.CommentService
	hub            *ws.Hub
}

func NewCommentHandler(db *sqlx.DB) *CommentHandler {
	return &CommentHandler{
		commentService: services.NewCommentService(db),
		hub:            ws.GetHub(),
	}
}

// GetToolComments godoc
// @Summary Comments for a tool, newest first
// @Tags comments
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} handlers.Envelope{data=[]dto.Comment}
// @Failure 404 {object} handlers.Envelope
// @Router /api/tools/{slug}/comments [get]
func (h *CommentHandler) GetToolComments(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "tool slug is required")
	}

	comments, err := h.commentService.ListForTool(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		c.Logger().Errorf("comments for %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	return OK(c, http.StatusOK, dto.CommentsFromDomain(comments))
}

// AddToolComment godoc
// @Summary Append a comment to a tool
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "Tool slug"
// @Param comment body dto.AddCommentRequest true "Comment"
// @Success 201 {object} handlers.Envelope{data=dto.Comment}
// @Failure 400 {object} handlers.Envelope
// @Failure 404 {object} handlers.Envelope
// @Router /api/tools/{slug}/comments [post]
func (h *CommentHandler) AddToolComment(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return ErrBadRequest(c, "tool slug is required")
	}

	var req dto.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	comment, err := h.commentService.Add(c.Request().Context(), slug, req.Name, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		c.Logger().Errorf("add comment to %q: %v", slug, err)
		return ErrInternalServerError(c)
	}

	payload := dto.CommentFromDomain(comment)
	h.hub.Broadcast(ws.EventCommentAdded, payload)

	return OK(c, http.StatusCreated, payload)
}

// GetAllComments godoc
// @Summary All comments across the catalog
// @Tags comments
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]dto.Comment}
// @Router /api/comments [get]
func (h *CommentHandler) GetAllComments(c echo.Context) error {
	comments, err := h.commentService.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list all comments: %v", err)
		return ErrInternalServerError(c)
	}
	return OK(c, http.StatusOK, dto.CommentsFromDomain(comments))
}
