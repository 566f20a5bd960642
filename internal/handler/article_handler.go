package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/labstack/echo/v4"

	"articlehub/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleRequest represents the body of an article create or update.
// Omitted fields are left unchanged on update. image and imageAlt must be
// sent together.
type ArticleRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=255"`
	ShortDescription *string `json:"shortDescription" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	Image            *string `json:"image"`
	ImageAlt         *string `json:"imageAlt" validate:"omitempty,max=255"`
}

func (r ArticleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Image:            r.Image,
		ImageAlt:         r.ImageAlt,
	}
}

// List godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// Get godoc
// @Summary Get article by id
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Param If-None-Match header string false "ETag from a previous response"
// @Success 200 {object} model.Article
// @Success 304
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	article, err := h.articleService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	body, err := json.Marshal(article)
	if err != nil {
		return fail(c, err)
	}
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ArticleRequest true "Article data"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req ArticleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	article, err := h.articleService.Create(c.Request().Context(), req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body ArticleRequest true "Fields to change"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [patch]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req ArticleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	article, err := h.articleService.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Delete godoc
// @Summary Delete an article with its image, comments and likes
// @Tags articles
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.articleService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
