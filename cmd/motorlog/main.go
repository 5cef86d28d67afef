package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"motorlog/internal/api"
	"motorlog/internal/api/handlers"
	"motorlog/internal/engine"
	"motorlog/internal/repository"
	"motorlog/internal/service"
	"motorlog/pkg/auth"
	"motorlog/pkg/config"
	"motorlog/pkg/logger"
	"motorlog/pkg/postgres"

	"go.uber.org/zap"
)

// @title MotorLog API
// @version 1.0
// @description Vehicle maintenance tracking and workshop CRM
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@motorlog.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting MotorLog service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	vehicleRepo := repository.NewVehicleRepository(db, appLogger)
	maintenanceRepo := repository.NewMaintenanceRepository(db, appLogger)
	workshopRepo := repository.NewWorkshopRepository(db, appLogger)
	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	// Load and validate the maintenance catalog. An invalid catalog is a
	// configuration error and refuses startup.
	items, err := catalogRepo.ListAll(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load maintenance catalog", zap.Error(err))
	}
	catalog, err := engine.NewCatalog(items)
	if err != nil {
		appLogger.Fatal("Invalid maintenance catalog", zap.Error(err))
	}
	appLogger.Info("Maintenance catalog loaded", zap.Int("items", len(items)))

	evaluator := engine.NewScheduleEvaluator(catalog, engine.ScheduleConfig{
		DueSoonDays:        cfg.Engine.DueSoonDays,
		UrgentDays:         cfg.Engine.UrgentDays,
		FallbackKmPerMonth: cfg.Engine.FallbackKmPerMonth,
	})

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	vehicleService := service.NewVehicleService(vehicleRepo, appLogger)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, vehicleRepo, appLogger)
	workshopService := service.NewWorkshopService(workshopRepo, appLogger)
	insightsService := service.NewInsightsService(evaluator, vehicleRepo, maintenanceRepo, workshopRepo, userRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, insightsService, appLogger)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, workshopService, appLogger)
	workshopHandler := handlers.NewWorkshopHandler(workshopService, insightsService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, vehicleHandler, maintenanceHandler, workshopHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
