package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"motorlog/internal/models"
)

func testAlert(criticality models.CriticalityLevel, minCost, maxCost float64) Alert {
	return Alert{
		VehicleID: uuid.New(),
		Item: models.CatalogItem{
			Category:    models.CategoryCar,
			Name:        "Oil change",
			Criticality: criticality,
			MinCost:     minCost,
			MaxCost:     maxCost,
		},
		Status:      StatusDueSoon,
		Criticality: criticality,
		MinCost:     minCost,
		MaxCost:     maxCost,
	}
}

func TestEstimateRevenue_CatalogDefaults(t *testing.T) {
	est := EstimateRevenue(testAlert(models.CriticalityMedium, 100, 200), nil)

	assert.Equal(t, 100.0, est.MinParts)
	assert.Equal(t, 200.0, est.MaxParts)
	assert.Equal(t, 25.0, est.MinLabor)
	assert.Equal(t, 50.0, est.MaxLabor)
	assert.Equal(t, 125.0, est.MinTotal)
	assert.Equal(t, 250.0, est.MaxTotal)
}

func TestEstimateRevenue_LaborPercentFollowsCriticality(t *testing.T) {
	cases := []struct {
		criticality models.CriticalityLevel
		wantPct     float64
	}{
		{models.CriticalityCritical, 0.35},
		{models.CriticalityHigh, 0.30},
		{models.CriticalityMedium, 0.25},
		{models.CriticalityLow, 0.20},
	}

	for _, tc := range cases {
		est := EstimateRevenue(testAlert(tc.criticality, 100, 100), nil)
		assert.Equal(t, 100*tc.wantPct, est.MinLabor, "criticality %s", tc.criticality)
	}
}

func TestEstimateRevenue_OverrideShadowsCatalog(t *testing.T) {
	alert := testAlert(models.CriticalityHigh, 80, 150)
	overrides := OverrideMap([]models.PriceOverride{
		{
			WorkshopID: uuid.New(),
			Category:   models.CategoryCar,
			ItemName:   "oil change",
			MinCost:    90,
			MaxCost:    140,
		},
	})

	est := EstimateRevenue(alert, overrides)

	assert.Equal(t, 90.0, est.MinParts)
	assert.Equal(t, 140.0, est.MaxParts)
	// Labor percentage still comes from criticality when the override has none.
	assert.Equal(t, 27.0, est.MinLabor)
	assert.Equal(t, 42.0, est.MaxLabor)
}

func TestEstimateRevenue_OverrideLaborPercent(t *testing.T) {
	pct := 0.40
	alert := testAlert(models.CriticalityLow, 100, 200)
	overrides := OverrideMap([]models.PriceOverride{
		{
			Category:     models.CategoryCar,
			ItemName:     "Oil change",
			MinCost:      100,
			MaxCost:      200,
			LaborPercent: &pct,
		},
	})

	est := EstimateRevenue(alert, overrides)

	assert.Equal(t, 40.0, est.MinLabor)
	assert.Equal(t, 80.0, est.MaxLabor)
}

func TestEstimateRevenue_MinNeverExceedsMax(t *testing.T) {
	for _, level := range []models.CriticalityLevel{
		models.CriticalityLow, models.CriticalityMedium, models.CriticalityHigh, models.CriticalityCritical,
	} {
		est := EstimateRevenue(testAlert(level, 35, 780), nil)
		assert.LessOrEqual(t, est.MinParts, est.MaxParts)
		assert.LessOrEqual(t, est.MinLabor, est.MaxLabor)
		assert.LessOrEqual(t, est.MinTotal, est.MaxTotal)
	}
}
