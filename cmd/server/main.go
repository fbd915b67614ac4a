package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/handlers"
	"inventory-backend/internal/middleware"
	"inventory-backend/internal/repositories"
	"inventory-backend/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(&cfg.Security)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, passwordService, tokenService, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	productService := services.NewProductService(productRepo, categoryRepo, logger)
	supplierService := services.NewSupplierService(supplierRepo, logger)
	transactionService := services.NewTransactionService(transactionRepo, productRepo, supplierRepo, metrics, logger)
	userService := services.NewUserService(userRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Middleware order matters: trace IDs first so everything downstream
	// can log them, the identity gate last so every route shares one
	// resolution pass.
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.Authenticate(tokenService))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout, middleware.RequireAuth())
	auth.GET("/me", authHandler.Me, middleware.RequireAuth())

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create, middleware.RequireAdmin())
	categories.PUT("/:id", categoryHandler.Update, middleware.RequireAdmin())
	categories.DELETE("/:id", categoryHandler.Delete, middleware.RequireAdmin())

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/low-stock", productHandler.LowStock, middleware.RequireAuth())
	products.GET("/:id", productHandler.GetByID)
	products.POST("", productHandler.Create, middleware.RequireAuth())
	products.PUT("/:id", productHandler.Update, middleware.RequireAuth())
	products.DELETE("/:id", productHandler.Delete, middleware.RequireAdmin())

	suppliers := api.Group("/suppliers", middleware.RequireAuth())
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.GetByID)
	suppliers.POST("", supplierHandler.Create, middleware.RequireAdmin())
	suppliers.PUT("/:id", supplierHandler.Update, middleware.RequireAdmin())
	suppliers.DELETE("/:id", supplierHandler.Delete, middleware.RequireAdmin())

	transactions := api.Group("/transactions", middleware.RequireAuth())
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.GetByID)
	transactions.POST("", transactionHandler.Create)

	users := api.Group("/users", middleware.RequireAdmin())
	users.GET("", userHandler.List)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server stopped")
}
