package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"articlehub/internal/auth"
	apperrors "articlehub/internal/errors"
	"articlehub/internal/service"
)

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := c.Get(auth.UserIDContextKey).(uint)
	if !ok {
		return apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken).Echo()
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user.Public())
}
