package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/admin-api/internal/application/service"
	"github.com/shopkart/admin-api/internal/config"
	"github.com/shopkart/admin-api/internal/infrastructure/database"
	"github.com/shopkart/admin-api/internal/infrastructure/repository"
	"github.com/shopkart/admin-api/internal/presentation/http/handler"
	"github.com/shopkart/admin-api/internal/presentation/http/routes"
	"github.com/shopkart/admin-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data (bootstrap admin, demo orders/customers)
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	dashboardService := service.NewDashboardService(orderRepo, customerRepo)
	orderService := service.NewOrderService(orderRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Order:     handler.NewOrderHandler(orderService),
		Customer:  handler.NewCustomerHandler(customerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
