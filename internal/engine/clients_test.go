package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorlog/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAggregateClients_GroupsByVehicle(t *testing.T) {
	v1 := testVehicle(20000)
	v2 := testVehicle(8000)
	v2.Plate = "XYZ9K88"

	records := []models.MaintenanceRecord{
		testRecord(v1.ID, "Oil change", 15000, 90),
		testRecord(v2.ID, "Tire rotation", 7000, 30),
		testRecord(v1.ID, "Brake pads", 18000, 20),
	}
	records[0].Cost = 120
	records[1].Cost = 80
	records[2].Cost = 300

	summaries := AggregateClients(records, []models.Vehicle{v1, v2}, nil)

	require.Len(t, summaries, 2)

	// Sorted by last visit, most recent first.
	first := summaries[0]
	assert.Equal(t, v1.ID, first.Vehicle.ID)
	assert.Equal(t, "ABC1D23", first.ClientKey)
	assert.Equal(t, 2, first.VisitCount)
	assert.InDelta(t, 420, first.TotalSpend, 0.001)
	assert.InDelta(t, 18000, first.LastKm, 0.001)
	assert.Len(t, first.History, 2)

	assert.Equal(t, v2.ID, summaries[1].Vehicle.ID)
	assert.Equal(t, 1, summaries[1].VisitCount)
}

func TestAggregateClients_DropsRecordsForUnknownVehicles(t *testing.T) {
	v1 := testVehicle(20000)

	records := []models.MaintenanceRecord{
		testRecord(v1.ID, "Oil change", 15000, 10),
		testRecord(uuid.New(), "Oil change", 5000, 5),
	}

	summaries := AggregateClients(records, []models.Vehicle{v1}, nil)

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].VisitCount)
}

func TestAggregateClients_RegisteredProfileOverridesPendingContact(t *testing.T) {
	owner := models.User{
		ID:    uuid.New(),
		Name:  "Ana Souza",
		Phone: "+5511999990000",
		Email: "ana@example.com",
	}
	vehicle := testVehicle(20000)
	vehicle.OwnerID = &owner.ID

	rec := testRecord(vehicle.ID, "Oil change", 15000, 10)
	rec.PendingName = strPtr("A. Souza (walk-in)")
	rec.PendingPhone = strPtr("+5511888880000")

	summaries := AggregateClients(
		[]models.MaintenanceRecord{rec},
		[]models.Vehicle{vehicle},
		map[uuid.UUID]models.User{owner.ID: owner},
	)

	require.Len(t, summaries, 1)
	summary := summaries[0]
	assert.True(t, summary.Registered)
	assert.Equal(t, owner.ID.String(), summary.ClientKey)
	require.NotNil(t, summary.Name)
	assert.Equal(t, "Ana Souza", *summary.Name)
	require.NotNil(t, summary.Phone)
	assert.Equal(t, "+5511999990000", *summary.Phone)
}

func TestAggregateClients_PendingContactFallback(t *testing.T) {
	vehicle := testVehicle(20000)

	older := testRecord(vehicle.ID, "Oil change", 12000, 120)
	older.PendingName = strPtr("Carlos")
	older.PendingEmail = strPtr("carlos@example.com")

	newer := testRecord(vehicle.ID, "Brake pads", 15000, 10)
	newer.PendingPhone = strPtr("+5511777770000")

	summaries := AggregateClients(
		[]models.MaintenanceRecord{older, newer},
		[]models.Vehicle{vehicle},
		nil,
	)

	require.Len(t, summaries, 1)
	summary := summaries[0]
	assert.False(t, summary.Registered)
	assert.Equal(t, vehicle.Plate, summary.ClientKey)

	// Fields resolve independently, most recent record first.
	require.NotNil(t, summary.Name)
	assert.Equal(t, "Carlos", *summary.Name)
	require.NotNil(t, summary.Phone)
	assert.Equal(t, "+5511777770000", *summary.Phone)
	require.NotNil(t, summary.Email)
	assert.Equal(t, "carlos@example.com", *summary.Email)
}

func TestAggregateClients_NoContactStaysNil(t *testing.T) {
	vehicle := testVehicle(20000)
	summaries := AggregateClients(
		[]models.MaintenanceRecord{testRecord(vehicle.ID, "Oil change", 15000, 10)},
		[]models.Vehicle{vehicle},
		nil,
	)

	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].Name)
	assert.Nil(t, summaries[0].Phone)
	assert.Nil(t, summaries[0].Email)
}
