package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-api/internal/api/handler"
	"github.com/recipebook/recipe-api/internal/api/middleware"
	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Repos and services are
// wired by the caller so tests can swap in in-memory implementations.
type Dependencies struct {
	Users           ports.UserService
	Recipes         ports.RecipeService
	RegisterLimiter handler.RegisterLimiter
	Health          *handler.HealthHandler
	Readiness       *handler.ReadinessHandler
	JWTSecret       string
	Logger          zerolog.Logger
	// Shutdown is invoked by the admin shutdown endpoint.
	Shutdown func()
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recipes_http"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users, deps.RegisterLimiter, deps.Logger)
	recipeHandler := handler.NewRecipeHandler(deps.Recipes, deps.Users)
	adminHandler := handler.NewAdminHandler(deps.Shutdown, deps.Logger)

	authn := middleware.Auth(deps.Users, deps.JWTSecret)
	userOrAdmin := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Recipe routes (authenticated, USER or ADMIN) ---
	recipes := e.Group("/api/recipe", authn, userOrAdmin)
	recipes.POST("/new", recipeHandler.Create)
	recipes.GET("/search", recipeHandler.Search)
	recipes.GET("/:id", recipeHandler.Get)
	recipes.PUT("/:id", recipeHandler.Update)
	recipes.DELETE("/:id", recipeHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authn, adminOnly)
	admin.POST("/shutdown", adminHandler.Shutdown)

	// --- Probes and metrics (no auth required) ---
	if deps.Health != nil {
		e.GET("/health", deps.Health.Liveness)
	}
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
