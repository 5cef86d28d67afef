package main

import (
	"context"
	"log"
	"time"

	"motorlog/internal/engine"
	"motorlog/internal/models"
	"motorlog/internal/repository"
	"motorlog/pkg/config"
	"motorlog/pkg/logger"
	"motorlog/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	count, err := catalogRepo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to check catalog", zap.Error(err))
	}
	if count > 0 {
		appLogger.Info("Catalog already seeded, nothing to do", zap.Int64("items", count))
		return
	}

	items := defaultCatalog()

	// Validate before writing anything: a broken default catalog must never
	// reach the database.
	values := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		values = append(values, *item)
	}
	if _, err := engine.NewCatalog(values); err != nil {
		appLogger.Fatal("Default catalog is invalid", zap.Error(err))
	}

	if err := catalogRepo.CreateBatch(ctx, items); err != nil {
		appLogger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	appLogger.Info("Catalog seeded", zap.Int("items", len(items)))
}

func kmPtr(v float64) *float64 { return &v }
func monthsPtr(v int) *int     { return &v }

// defaultCatalog is the factory-recommended maintenance plan shipped with
// the product. Workshops adjust pricing through overrides, not here.
func defaultCatalog() []*models.CatalogItem {
	type row struct {
		category    models.VehicleCategory
		name        string
		km          *float64
		months      *int
		criticality models.CriticalityLevel
		minCost     float64
		maxCost     float64
	}

	rows := []row{
		// Cars
		{models.CategoryCar, "Oil change", kmPtr(5000), monthsPtr(6), models.CriticalityHigh, 80, 180},
		{models.CategoryCar, "Oil filter", kmPtr(5000), monthsPtr(6), models.CriticalityHigh, 25, 60},
		{models.CategoryCar, "Air filter", kmPtr(10000), monthsPtr(12), models.CriticalityLow, 40, 90},
		{models.CategoryCar, "Cabin filter", kmPtr(10000), monthsPtr(12), models.CriticalityLow, 35, 80},
		{models.CategoryCar, "Fuel filter", kmPtr(20000), nil, models.CriticalityMedium, 60, 140},
		{models.CategoryCar, "Tire rotation", kmPtr(10000), nil, models.CriticalityMedium, 40, 80},
		{models.CategoryCar, "Wheel alignment", kmPtr(10000), monthsPtr(12), models.CriticalityLow, 60, 120},
		{models.CategoryCar, "Brake pads", kmPtr(20000), nil, models.CriticalityHigh, 150, 350},
		{models.CategoryCar, "Brake fluid", nil, monthsPtr(24), models.CriticalityCritical, 80, 160},
		{models.CategoryCar, "Coolant flush", kmPtr(30000), monthsPtr(24), models.CriticalityMedium, 100, 200},
		{models.CategoryCar, "Spark plugs", kmPtr(30000), nil, models.CriticalityMedium, 80, 220},
		{models.CategoryCar, "Timing belt", kmPtr(60000), monthsPtr(48), models.CriticalityCritical, 400, 900},
		{models.CategoryCar, "Battery", nil, monthsPtr(36), models.CriticalityHigh, 250, 500},
		{models.CategoryCar, "Transmission fluid", kmPtr(60000), nil, models.CriticalityMedium, 180, 400},

		// Motorcycles
		{models.CategoryMotorcycle, "Oil change", kmPtr(3000), monthsPtr(6), models.CriticalityHigh, 50, 120},
		{models.CategoryMotorcycle, "Chain lubrication", kmPtr(1000), nil, models.CriticalityLow, 15, 30},
		{models.CategoryMotorcycle, "Chain kit", kmPtr(15000), nil, models.CriticalityMedium, 200, 450},
		{models.CategoryMotorcycle, "Brake pads", kmPtr(10000), nil, models.CriticalityHigh, 80, 180},
		{models.CategoryMotorcycle, "Tires", kmPtr(15000), nil, models.CriticalityCritical, 300, 700},

		// Pickups and vans
		{models.CategoryPickup, "Oil change", kmPtr(7500), monthsPtr(6), models.CriticalityHigh, 120, 250},
		{models.CategoryPickup, "Brake pads", kmPtr(25000), nil, models.CriticalityHigh, 200, 450},
		{models.CategoryPickup, "Suspension check", kmPtr(20000), monthsPtr(12), models.CriticalityMedium, 100, 300},
		{models.CategoryVan, "Oil change", kmPtr(7500), monthsPtr(6), models.CriticalityHigh, 120, 250},
		{models.CategoryVan, "Brake pads", kmPtr(25000), nil, models.CriticalityHigh, 200, 450},

		// Trucks
		{models.CategoryTruck, "Oil change", kmPtr(15000), monthsPtr(6), models.CriticalityHigh, 300, 600},
		{models.CategoryTruck, "Brake inspection", kmPtr(20000), monthsPtr(6), models.CriticalityCritical, 150, 400},
		{models.CategoryTruck, "Air filter", kmPtr(20000), monthsPtr(12), models.CriticalityMedium, 90, 200},
	}

	now := time.Now()
	items := make([]*models.CatalogItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, &models.CatalogItem{
			ID:            uuid.New(),
			Category:      r.category,
			Name:          r.name,
			KmInterval:    r.km,
			MonthInterval: r.months,
			Criticality:   r.criticality,
			MinCost:       r.minCost,
			MaxCost:       r.maxCost,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return items
}
