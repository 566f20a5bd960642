package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"articlehub/internal/service"
)

// LikeHandler handles like/dislike endpoints.
type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new like handler.
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ReactionRequest represents a single vote.
type ReactionRequest struct {
	Reaction string `json:"reaction" validate:"required,oneof=like dislike"`
}

// Get godoc
// @Summary Like counters of an article or comment
// @Tags likes
// @Produce json
// @Param type path string true "articles or comments"
// @Param id path int true "Likeable ID"
// @Success 200 {object} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Router /likes/{type}/{id} [get]
func (h *LikeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	like, err := h.likeService.Get(c.Request().Context(), c.Param("type"), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, like)
}

// React godoc
// @Summary Like or dislike an article or comment
// @Tags likes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "articles or comments"
// @Param id path int true "Likeable ID"
// @Param request body ReactionRequest true "Reaction"
// @Success 200 {object} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /likes/{type}/{id} [post]
func (h *LikeHandler) React(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req ReactionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	like, err := h.likeService.React(c.Request().Context(), c.Param("type"), id, req.Reaction)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, like)
}
