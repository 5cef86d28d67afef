package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorlog/internal/models"
)

func kmPtr(v float64) *float64 { return &v }
func monthsPtr(v int) *int     { return &v }

func TestNewCatalog_ValidItems(t *testing.T) {
	catalog, err := NewCatalog([]models.CatalogItem{
		{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
		{Category: models.CategoryCar, Name: "Brake pads", MonthInterval: monthsPtr(12), Criticality: models.CriticalityCritical, MinCost: 120, MaxCost: 300},
		{Category: models.CategoryMotorcycle, Name: "Chain lubrication", KmInterval: kmPtr(1000), Criticality: models.CriticalityLow, MinCost: 15, MaxCost: 30},
	})

	require.NoError(t, err)
	assert.Len(t, catalog.ItemsFor(models.CategoryCar), 2)
	assert.Len(t, catalog.ItemsFor(models.CategoryMotorcycle), 1)
	assert.Empty(t, catalog.ItemsFor(models.CategoryTruck))
}

func TestNewCatalog_RejectsItemWithoutIntervals(t *testing.T) {
	_, err := NewCatalog([]models.CatalogItem{
		{Category: models.CategoryCar, Name: "Oil change", Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no km or month interval")
}

func TestNewCatalog_RejectsInvertedCostRange(t *testing.T) {
	_, err := NewCatalog([]models.CatalogItem{
		{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 200, MaxCost: 150},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "min cost")
}

func TestNewCatalog_RejectsNegativeCost(t *testing.T) {
	_, err := NewCatalog([]models.CatalogItem{
		{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: -10, MaxCost: 150},
	})

	require.Error(t, err)
}

func TestServiceMatchesItem(t *testing.T) {
	assert.True(t, serviceMatchesItem("Oil change and filter", "Oil change"))
	assert.True(t, serviceMatchesItem("  oil CHANGE ", "Oil change"))
	assert.True(t, serviceMatchesItem("brakes", "Brakes and pads"))
	assert.False(t, serviceMatchesItem("Tire rotation", "Oil change"))
	assert.False(t, serviceMatchesItem("", "Oil change"))
}
