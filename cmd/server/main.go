package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"articlehub/docs"
	"articlehub/internal/auth"
	"articlehub/internal/cache"
	"articlehub/internal/config"
	"articlehub/internal/db"
	"articlehub/internal/handler"
	"articlehub/internal/repository"
	"articlehub/internal/router"
	"articlehub/internal/service"
)

// @title Articlehub API
// @version 1.0
// @description Articles, images, comments and likes behind JWT authentication with server-side session revocation.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unavailable, serving without cache: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	issuedTokenRepo := repository.NewIssuedTokenRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(issuedTokenRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	articleService := service.NewArticleService(articleRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	likeService := service.NewLikeService(likeRepo, articleRepo, commentRepo)
	imageService := service.NewImageService(articleRepo)

	e := echo.New()

	router.Register(
		e,
		cfg,
		auth.Guard(jwtService, tokenStore),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewArticleHandler(articleService),
		handler.NewCommentHandler(commentService),
		handler.NewLikeHandler(likeService),
		handler.NewImageHandler(imageService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go auth.RunPurger(ctx, tokenStore, cfg.TokenPurgeInterval, e.Logger)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/api-docs/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "http") {
			swaggerURL = cfg.SwaggerHost + "/api-docs/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/api-docs/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
