package api

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopline/commerce-api/internal/api/handler"
	"github.com/shopline/commerce-api/internal/api/middleware"
	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/service"
	"github.com/shopline/commerce-api/internal/infrastructure/db/postgres"
	"github.com/shopline/commerce-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/shopline/commerce-api/internal/infrastructure/http/handlers"
)

// Secrets carries the two independent signing secrets, one per token kind.
type Secrets struct {
	JWTSecret        string
	JWTRefreshSecret string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *goredis.Client, secrets Secrets, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	denylist := redis.NewTokenDenylist(rdb)

	tokenService := service.NewTokenService(secrets.JWTSecret, secrets.JWTRefreshSecret)
	authService := service.NewAuthService(userRepo, tokenService, denylist, log)
	orderService := service.NewOrderService(orderRepo, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authGuard := middleware.Auth(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authGuard)
	auth.GET("/me", authHandler.Me, authGuard)

	// --- Order routes ---
	orders := e.Group("/api/orders", authGuard)
	orders.POST("", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.MyOrders)
	orders.GET("/admin/all", orderHandler.AllOrders, adminOnly)

	// --- User management (admin only) ---
	users := e.Group("/api/users", authGuard, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Product catalog (reads public, writes admin) ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authGuard, adminOnly)
	products.PUT("/:id", productHandler.Update, authGuard, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
