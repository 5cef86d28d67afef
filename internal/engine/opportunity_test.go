package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorlog/internal/models"
)

func clientWithVehicle(plate string, lastVisitDaysAgo int) ClientSummary {
	vehicle := testVehicle(20000)
	vehicle.ID = uuid.New()
	vehicle.Plate = plate
	return ClientSummary{
		ClientKey: plate,
		Vehicle:   vehicle,
		LastVisit: testNow.AddDate(0, 0, -lastVisitDaysAgo),
	}
}

func openAlert(vehicleID uuid.UUID, criticality models.CriticalityLevel, minCost, maxCost float64) Alert {
	a := testAlert(criticality, minCost, maxCost)
	a.VehicleID = vehicleID
	return a
}

func TestRankOpportunities_SkipsClientsWithoutOpenAlerts(t *testing.T) {
	clientDue := clientWithVehicle("AAA0A00", 30)
	clientOK := clientWithVehicle("BBB0B00", 30)

	upToDate := testAlert(models.CriticalityLow, 10, 20)
	upToDate.VehicleID = clientOK.Vehicle.ID
	upToDate.Status = StatusUpToDate

	alerts := map[uuid.UUID][]Alert{
		clientDue.Vehicle.ID: {openAlert(clientDue.Vehicle.ID, models.CriticalityHigh, 80, 150)},
		clientOK.Vehicle.ID:  {upToDate},
	}

	opps := RankOpportunities([]ClientSummary{clientDue, clientOK}, alerts, nil, SortByCriticality, nil, testNow)

	require.Len(t, opps, 1)
	assert.Equal(t, "AAA0A00", opps[0].Client.ClientKey)
}

func TestRankOpportunities_SumsEstimatesAndCounts(t *testing.T) {
	client := clientWithVehicle("AAA0A00", 45)
	alerts := map[uuid.UUID][]Alert{
		client.Vehicle.ID: {
			openAlert(client.Vehicle.ID, models.CriticalityCritical, 100, 200),
			openAlert(client.Vehicle.ID, models.CriticalityMedium, 40, 60),
		},
	}

	opps := RankOpportunities([]ClientSummary{client}, alerts, nil, SortByRevenue, nil, testNow)

	require.Len(t, opps, 1)
	opp := opps[0]
	assert.Equal(t, 1, opp.CriticalCount)
	assert.Equal(t, 1, opp.MediumCount)
	// critical: 100+35 / 200+70; medium: 40+10 / 60+15
	assert.InDelta(t, 185, opp.MinTotal, 0.001)
	assert.InDelta(t, 345, opp.MaxTotal, 0.001)
	require.NotNil(t, opp.DaysSinceLastVisit)
	assert.Equal(t, 45, *opp.DaysSinceLastVisit)
}

func TestRankOpportunities_CriticalitySortNeverDemotesCritical(t *testing.T) {
	rich := clientWithVehicle("LOW0L00", 10)
	urgent := clientWithVehicle("CRT0C00", 10)

	alerts := map[uuid.UUID][]Alert{
		// High revenue but nothing critical or high.
		rich.Vehicle.ID: {openAlert(rich.Vehicle.ID, models.CriticalityMedium, 2000, 5000)},
		urgent.Vehicle.ID: {openAlert(urgent.Vehicle.ID, models.CriticalityCritical, 50, 100)},
	}

	opps := RankOpportunities([]ClientSummary{rich, urgent}, alerts, nil, SortByCriticality, nil, testNow)

	require.Len(t, opps, 2)
	assert.Equal(t, "CRT0C00", opps[0].Client.ClientKey)
}

func TestRankOpportunities_RevenueSort(t *testing.T) {
	small := clientWithVehicle("SML0S00", 10)
	big := clientWithVehicle("BIG0B00", 10)

	alerts := map[uuid.UUID][]Alert{
		small.Vehicle.ID: {openAlert(small.Vehicle.ID, models.CriticalityCritical, 50, 100)},
		big.Vehicle.ID:   {openAlert(big.Vehicle.ID, models.CriticalityLow, 2000, 5000)},
	}

	opps := RankOpportunities([]ClientSummary{small, big}, alerts, nil, SortByRevenue, nil, testNow)

	require.Len(t, opps, 2)
	assert.Equal(t, "BIG0B00", opps[0].Client.ClientKey)
}

func TestRankOpportunities_DaysSortPutsMissingLastVisitLast(t *testing.T) {
	old := clientWithVehicle("OLD0O00", 90)
	recent := clientWithVehicle("NEW0N00", 5)
	never := clientWithVehicle("NVR0N00", 0)
	never.LastVisit = time.Time{}

	alerts := map[uuid.UUID][]Alert{
		old.Vehicle.ID:    {openAlert(old.Vehicle.ID, models.CriticalityLow, 10, 20)},
		recent.Vehicle.ID: {openAlert(recent.Vehicle.ID, models.CriticalityLow, 10, 20)},
		never.Vehicle.ID:  {openAlert(never.Vehicle.ID, models.CriticalityLow, 10, 20)},
	}

	opps := RankOpportunities([]ClientSummary{never, recent, old}, alerts, nil, SortByDays, nil, testNow)

	require.Len(t, opps, 3)
	assert.Equal(t, "OLD0O00", opps[0].Client.ClientKey)
	assert.Equal(t, "NEW0N00", opps[1].Client.ClientKey)
	assert.Equal(t, "NVR0N00", opps[2].Client.ClientKey)
}

func TestRankOpportunities_CriticalityFilter(t *testing.T) {
	critical := clientWithVehicle("CRT0C00", 10)
	mild := clientWithVehicle("MLD0M00", 10)

	alerts := map[uuid.UUID][]Alert{
		critical.Vehicle.ID: {
			openAlert(critical.Vehicle.ID, models.CriticalityCritical, 50, 100),
			openAlert(critical.Vehicle.ID, models.CriticalityLow, 10, 20),
		},
		mild.Vehicle.ID: {openAlert(mild.Vehicle.ID, models.CriticalityLow, 10, 20)},
	}

	filter := models.CriticalityCritical
	opps := RankOpportunities([]ClientSummary{critical, mild}, alerts, nil, SortByCriticality, &filter, testNow)

	require.Len(t, opps, 1)
	assert.Equal(t, "CRT0C00", opps[0].Client.ClientKey)
	assert.Len(t, opps[0].Alerts, 2)
}

func TestRankOpportunities_AppliesOverridesToTotals(t *testing.T) {
	client := clientWithVehicle("AAA0A00", 10)
	alerts := map[uuid.UUID][]Alert{
		client.Vehicle.ID: {openAlert(client.Vehicle.ID, models.CriticalityMedium, 100, 200)},
	}
	overrides := OverrideMap([]models.PriceOverride{
		{Category: models.CategoryCar, ItemName: "Oil change", MinCost: 200, MaxCost: 400},
	})

	opps := RankOpportunities([]ClientSummary{client}, alerts, overrides, SortByRevenue, nil, testNow)

	require.Len(t, opps, 1)
	assert.InDelta(t, 250, opps[0].MinTotal, 0.001)
	assert.InDelta(t, 500, opps[0].MaxTotal, 0.001)
}
