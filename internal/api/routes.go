package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"toolshub/internal/api/handlers"
	adminMiddleware "toolshub/internal/api/middleware"
	"toolshub/internal/config"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	wsHandler := handlers.NewWebSocketHandler(cfg)
	e.GET("/api/ws", wsHandler.HandleConnection)

	authHandler := handlers.NewAuthHandler(cfg.Admin, cfg.JWTKey)
	e.POST("/api/auth/signin", authHandler.SignIn)

	toolHandler := handlers.NewToolHandler(db, rdb)
	categoryHandler := handlers.NewCategoryHandler(db, rdb)
	commentHandler := handlers.NewCommentHandler(db)

	apiGroup := e.Group("/api")
	apiGroup.GET("/tools", toolHandler.GetAllTools)
	apiGroup.GET("/tools/featured", toolHandler.GetFeaturedTools)
	apiGroup.GET("/tools/:slug", toolHandler.GetToolBySlug)
	apiGroup.GET("/tools/:slug/related", toolHandler.GetRelatedTools)
	apiGroup.GET("/tools/:slug/comments", commentHandler.GetToolComments)
	apiGroup.POST("/tools/:slug/comments", commentHandler.AddToolComment)
	apiGroup.GET("/categories", categoryHandler.GetAllCategories)
	apiGroup.GET("/categories/:slug", categoryHandler.GetCategoryBySlug)
	apiGroup.GET("/categories/:slug/tools", categoryHandler.GetCategoryTools)
	apiGroup.GET("/comments", commentHandler.GetAllComments)

	// Write endpoints are only gated when an admin password hash is
	// configured. Without it they stay open, which mirrors the legacy
	// deployment where the "login" lived entirely in the browser.
	adminGroup := e.Group("/api")
	if cfg.AdminAuthEnabled() {
		jwtConfig := echojwt.Config{
			SigningKey: []byte(cfg.JWTKey),
			ContextKey: "user",
			ErrorHandler: func(c echo.Context, err error) error {
				return handlers.Fail(c, http.StatusUnauthorized, "unauthorized")
			},
		}
		adminGroup.Use(echojwt.WithConfig(jwtConfig))
		adminGroup.Use(adminMiddleware.RequireAdmin())
	}
	adminGroup.POST("/tools/add", toolHandler.AddTool)
	adminGroup.POST("/categories/add", categoryHandler.AddCategory)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
