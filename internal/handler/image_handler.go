package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"articlehub/internal/service"
)

// ImageHandler serves stored article images.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Get godoc
// @Summary Get image by id
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} model.Image
// @Failure 404 {object} errors.ErrorResponse
// @Router /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	image, err := h.imageService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, image)
}
