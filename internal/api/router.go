package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/messhub/feedback-system/internal/api/handler"
	"github.com/messhub/feedback-system/internal/api/middleware"
	"github.com/messhub/feedback-system/internal/core/service"
	"github.com/messhub/feedback-system/internal/infrastructure/config"
	"github.com/messhub/feedback-system/internal/infrastructure/db/postgres"
)

// NewRouter assembles the full HTTP surface: repositories, services,
// handlers, and middleware chains, wired in dependency order.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("feedback"))

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	menuRepo := postgres.NewMenuRepository(db)

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)
	menuService := service.NewMenuService(menuRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	menuHandler := handler.NewMenuHandler(menuService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewHealthDependenciesHandler(db)

	authenticated := middleware.Auth(tokenService)
	adminOnly := middleware.AdminOnly()

	// Operational endpoints
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Authentication
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticated)

	// Feedback lifecycle
	feedback := e.Group("/feedback", authenticated)
	feedback.POST("/submit", feedbackHandler.Submit)
	feedback.GET("/history", feedbackHandler.History)
	feedback.GET("/admin/all", feedbackHandler.ListAll, adminOnly)
	feedback.GET("/admin/stats", feedbackHandler.Stats, adminOnly)
	feedback.GET("/admin/export", feedbackHandler.Export, adminOnly)
	feedback.PATCH("/:id/status", feedbackHandler.UpdateStatus, adminOnly)

	// Menu display, no authentication required
	menu := e.Group("/menu")
	menu.GET("/today", menuHandler.Today)
	menu.GET("/weekly", menuHandler.Weekly)
	menu.GET("/:day", menuHandler.Weekday)

	return e
}
