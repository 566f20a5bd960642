package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "articlehub/internal/errors"
)

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

// bind decodes the request body into req and runs struct validation.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return apperrors.Validation(err.Error())
	}
	return nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid " + name)
	}
	return uint(id), nil
}

// fail converts a service error into the response error. Unexpected
// failures are logged here since the client only sees a generic message.
func fail(c echo.Context, err error) error {
	if errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.IsInternal() {
		c.Logger().Error(err)
	}
	return mapped.Echo()
}
