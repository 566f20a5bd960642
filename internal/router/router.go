package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"articlehub/internal/config"
	apperrors "articlehub/internal/errors"
	"articlehub/internal/handler"
)

// Register wires routes and middleware. guard protects every route that
// needs a signed-in user.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	imageHandler *handler.ImageHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "If-None-Match"},
		ExposeHeaders: []string{"ETag"},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/registrations", authHandler.Register)
	api.POST("/users/registrations", authHandler.Register)
	api.POST("/auth/sign_in", authHandler.SignIn)
	// sign_out validates the bearer token itself so it can report a revoked token.
	api.DELETE("/auth/sign_out", authHandler.SignOut)

	api.GET("/articles", articleHandler.List)
	api.GET("/articles/:id", articleHandler.Get)
	api.GET("/articles/:id/comments", commentHandler.List)
	api.GET("/likes/:type/:id", likeHandler.Get)
	api.GET("/images/:id", imageHandler.Get)

	// Secured routes (require a live bearer token)
	api.GET("/me", userHandler.Me, guard)

	api.POST("/articles", articleHandler.Create, guard)
	api.PATCH("/articles/:id", articleHandler.Update, guard)
	api.PUT("/articles/:id", articleHandler.Update, guard)
	api.DELETE("/articles/:id", articleHandler.Delete, guard)

	api.POST("/articles/:id/comments", commentHandler.Create, guard)
	api.PATCH("/comments/:id", commentHandler.Update, guard)
	api.DELETE("/comments/:id", commentHandler.Delete, guard)

	api.POST("/likes/:type/:id", likeHandler.React, guard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
