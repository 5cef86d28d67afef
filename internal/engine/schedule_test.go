package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorlog/internal/models"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testVehicle(currentKm float64) models.Vehicle {
	return models.Vehicle{
		ID:        uuid.New(),
		Plate:     "ABC1D23",
		Category:  models.CategoryCar,
		Brand:     "Fiat",
		Model:     "Argo",
		Year:      2021,
		CurrentKm: currentKm,
		CreatedAt: testNow.AddDate(-2, 0, 0),
	}
}

func testRecord(vehicleID uuid.UUID, description string, km float64, daysAgo int) models.MaintenanceRecord {
	return models.MaintenanceRecord{
		ID:          uuid.New(),
		VehicleID:   vehicleID,
		Date:        testNow.AddDate(0, 0, -daysAgo),
		Description: description,
		Km:          km,
		Cost:        100,
	}
}

func mustCatalog(t *testing.T, items ...models.CatalogItem) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(items)
	require.NoError(t, err)
	return catalog
}

func TestEvaluate_NoHistoryYieldsOneAlertPerItem(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
		models.CatalogItem{Category: models.CategoryCar, Name: "Air filter", KmInterval: kmPtr(10000), Criticality: models.CriticalityLow, MinCost: 30, MaxCost: 60},
		models.CatalogItem{Category: models.CategoryCar, Name: "Timing belt", MonthInterval: monthsPtr(48), Criticality: models.CriticalityCritical, MinCost: 400, MaxCost: 900},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(3000)
	alerts := evaluator.Evaluate(vehicle, nil, testNow)

	require.Len(t, alerts, 3)
	for _, alert := range alerts {
		assert.Equal(t, vehicle.ID, alert.VehicleID)
		assert.NotEmpty(t, alert.Message)
	}
}

func TestEvaluate_NoHistorySeedsFromRegistrationState(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(12000)
	vehicle.RegistrationKm = 10000

	alerts := evaluator.Evaluate(vehicle, nil, testNow)

	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].KmRemaining)
	assert.InDelta(t, 3000, *alerts[0].KmRemaining, 0.001)
}

// Distance scenario: last oil change at 10,000 km, odometer at 14,500, a
// 5,000 km interval and a 1,000 km/month trailing average leave 500 km,
// about 15 days of driving, which lands in the urgent due-soon band.
func TestEvaluate_DistanceRemainingConvertsToUrgentDueSoon(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(14500)
	history := []models.MaintenanceRecord{
		testRecord(vehicle.ID, "Brake inspection", 5500, 270),
		testRecord(vehicle.ID, "Oil change", 10000, 135),
	}

	alerts := evaluator.Evaluate(vehicle, history, testNow)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	require.NotNil(t, alert.KmRemaining)
	assert.InDelta(t, 500, *alert.KmRemaining, 0.001)
	assert.Equal(t, 15, alert.DaysRemaining)
	assert.Equal(t, StatusDueSoon, alert.Status)
	assert.True(t, alert.Urgent)
}

func TestEvaluate_OverdueByTime(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Brake fluid", MonthInterval: monthsPtr(12), Criticality: models.CriticalityCritical, MinCost: 60, MaxCost: 120},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(40000)
	history := []models.MaintenanceRecord{
		testRecord(vehicle.ID, "Brake fluid", 25000, 400),
	}

	alerts := evaluator.Evaluate(vehicle, history, testNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, StatusOverdue, alerts[0].Status)
	assert.Negative(t, alerts[0].DaysRemaining)
	assert.Contains(t, alerts[0].Message, "overdue")
}

func TestEvaluate_UpToDateOutsideDueBand(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(10000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(11000)
	history := []models.MaintenanceRecord{
		testRecord(vehicle.ID, "Oil change", 10000, 10),
	}

	// 9,000 km remaining at the fallback 1,000 km/month is far beyond the band.
	alerts := evaluator.Evaluate(vehicle, history, testNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, StatusUpToDate, alerts[0].Status)
}

func TestEvaluate_MoreUrgentIntervalGoverns(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(20000), MonthInterval: monthsPtr(6), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	// Distance leaves plenty of margin but the 6 month clock ran out.
	vehicle := testVehicle(21000)
	history := []models.MaintenanceRecord{
		testRecord(vehicle.ID, "Oil change", 20000, 200),
	}

	alerts := evaluator.Evaluate(vehicle, history, testNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, StatusOverdue, alerts[0].Status)
}

func TestEvaluate_LatestMatchingRecordIsBaseline(t *testing.T) {
	catalog := mustCatalog(t,
		models.CatalogItem{Category: models.CategoryCar, Name: "Oil change", KmInterval: kmPtr(5000), Criticality: models.CriticalityHigh, MinCost: 80, MaxCost: 150},
	)
	evaluator := NewScheduleEvaluator(catalog, DefaultScheduleConfig())

	vehicle := testVehicle(16000)
	history := []models.MaintenanceRecord{
		testRecord(vehicle.ID, "Oil change", 15000, 20),
		testRecord(vehicle.ID, "Oil change", 10000, 180),
	}

	alerts := evaluator.Evaluate(vehicle, history, testNow)

	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].KmRemaining)
	assert.InDelta(t, 4000, *alerts[0].KmRemaining, 0.001)
}
