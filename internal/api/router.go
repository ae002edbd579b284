package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/storefront/catalog-api/internal/api/handler"
	"github.com/storefront/catalog-api/internal/api/middleware"
	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/service"
	"github.com/storefront/catalog-api/internal/infrastructure/config"
	"github.com/storefront/catalog-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/storefront/catalog-api/internal/infrastructure/db/redis"
	"github.com/storefront/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes registered. Every
// dependency is constructed here from the injected handles; nothing is
// reached through package-level state.
func NewRouter(cfg *config.Config, log zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// The security policy is applied exactly once, from one config object.
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.DefaultSecureConfig))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Security.AllowedOrigins,
		AllowMethods:     cfg.Security.AllowedMethods,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: cfg.Security.AllowCredentials,
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	passwords := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuthService(userRepo, passwords, tokens)
	userService := service.NewUserService(userRepo, passwords)
	productService := service.NewProductService(productRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	limiter := redisinfra.NewRateLimiter(rdb, cfg.Security.RateLimitWindow, cfg.Security.RateLimitMax)
	api := e.Group("/api", middleware.RateLimit(limiter, log))

	// --- Auth routes ---
	api.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := api.Group("/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Product routes (reads are public) ---
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authRequired, adminOnly)
	products.PUT("/:id", productHandler.Update, authRequired, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
