package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"motorlog/internal/models"
)

// ClientSummary is a per-client rollup of a workshop's maintenance history.
// The vehicle stands in for the client when the driver has no account; its
// plate is the grouping key in that case.
type ClientSummary struct {
	ClientKey  string
	Vehicle    models.Vehicle
	Registered bool
	Name       *string
	Phone      *string
	Email      *string
	VisitCount int
	TotalSpend float64
	LastVisit  time.Time
	LastKm     float64
	History    []models.MaintenanceRecord

	// Attached after scoring.
	Score   int
	Segment Segment
}

// AggregateClients groups maintenance records by vehicle into client
// summaries. Records referencing a vehicle not present in the snapshot are
// dropped, not fatal. Contact details resolve registered profile data first,
// then the most recent record-embedded pending contact, field by field.
func AggregateClients(records []models.MaintenanceRecord, vehicles []models.Vehicle, owners map[uuid.UUID]models.User) []ClientSummary {
	vehicleByID := make(map[uuid.UUID]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}

	grouped := make(map[uuid.UUID][]models.MaintenanceRecord)
	order := make([]uuid.UUID, 0)
	for _, rec := range records {
		if _, ok := vehicleByID[rec.VehicleID]; !ok {
			continue
		}
		if _, seen := grouped[rec.VehicleID]; !seen {
			order = append(order, rec.VehicleID)
		}
		grouped[rec.VehicleID] = append(grouped[rec.VehicleID], rec)
	}

	summaries := make([]ClientSummary, 0, len(order))
	for _, vehicleID := range order {
		vehicle := vehicleByID[vehicleID]
		history := grouped[vehicleID]

		summary := ClientSummary{
			ClientKey: vehicle.Plate,
			Vehicle:   vehicle,
			History:   history,
		}

		if vehicle.OwnerID != nil {
			if owner, ok := owners[*vehicle.OwnerID]; ok {
				summary.ClientKey = owner.ID.String()
				summary.Registered = true
				if owner.Name != "" {
					summary.Name = &owner.Name
				}
				if owner.Phone != "" {
					summary.Phone = &owner.Phone
				}
				if owner.Email != "" {
					summary.Email = &owner.Email
				}
			}
		}

		for _, rec := range history {
			summary.VisitCount++
			summary.TotalSpend += rec.Cost
			if rec.Date.After(summary.LastVisit) {
				summary.LastVisit = rec.Date
				summary.LastKm = rec.Km
			}
		}

		fillPendingContact(&summary, history)
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastVisit.After(summaries[j].LastVisit)
	})
	return summaries
}

// fillPendingContact backfills missing contact fields from workshop-entered
// pending metadata, most recent record first.
func fillPendingContact(summary *ClientSummary, history []models.MaintenanceRecord) {
	recent := make([]models.MaintenanceRecord, len(history))
	copy(recent, history)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })

	for _, rec := range recent {
		if summary.Name == nil && rec.PendingName != nil {
			summary.Name = rec.PendingName
		}
		if summary.Phone == nil && rec.PendingPhone != nil {
			summary.Phone = rec.PendingPhone
		}
		if summary.Email == nil && rec.PendingEmail != nil {
			summary.Email = rec.PendingEmail
		}
	}
}
