package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"motorlog/internal/models"
)

type DueStatus string

const (
	StatusUpToDate DueStatus = "up_to_date"
	StatusDueSoon  DueStatus = "due_soon"
	StatusOverdue  DueStatus = "overdue"
)

// Alert is a derived due/overdue notice for one vehicle/catalog-item pair.
// Alerts are never persisted; they are recomputed on every evaluation.
type Alert struct {
	VehicleID   uuid.UUID
	Plate       string
	Item        models.CatalogItem
	Status      DueStatus
	Urgent      bool
	Message     string
	Criticality models.CriticalityLevel
	MinCost     float64
	MaxCost     float64
	// KmRemaining is set only when the item defines a distance interval.
	KmRemaining   *float64
	DaysRemaining int
}

// ScheduleConfig carries the evaluation thresholds. The due bands and the
// fallback monthly distance are product defaults, kept configurable.
type ScheduleConfig struct {
	DueSoonDays        int
	UrgentDays         int
	FallbackKmPerMonth float64
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		DueSoonDays:        30,
		UrgentDays:         15,
		FallbackKmPerMonth: 1000,
	}
}

// ScheduleEvaluator checks a vehicle's maintenance history against the
// catalog and produces one alert per applicable catalog item.
type ScheduleEvaluator struct {
	catalog *Catalog
	cfg     ScheduleConfig
}

func NewScheduleEvaluator(catalog *Catalog, cfg ScheduleConfig) *ScheduleEvaluator {
	return &ScheduleEvaluator{catalog: catalog, cfg: cfg}
}

// Evaluate produces the due-status alerts for one vehicle. A vehicle with no
// maintenance history gets an alert for every applicable item, seeded from
// its registration state.
func (e *ScheduleEvaluator) Evaluate(vehicle models.Vehicle, history []models.MaintenanceRecord, now time.Time) []Alert {
	items := e.catalog.ItemsFor(vehicle.Category)
	if len(items) == 0 {
		return nil
	}

	sorted := make([]models.MaintenanceRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	kmPerMonth := e.monthlyDistance(sorted)

	alerts := make([]Alert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, e.evaluateItem(vehicle, sorted, item, kmPerMonth, now))
	}
	return alerts
}

func (e *ScheduleEvaluator) evaluateItem(vehicle models.Vehicle, history []models.MaintenanceRecord, item models.CatalogItem, kmPerMonth float64, now time.Time) Alert {
	baselineKm := vehicle.RegistrationKm
	baselineDate := vehicle.CreatedAt

	// History is date-ascending, so the last match is the most recent service.
	for _, rec := range history {
		if serviceMatchesItem(rec.Description, item.Name) {
			baselineKm = rec.Km
			baselineDate = rec.Date
		}
	}

	kmSince := vehicle.CurrentKm - baselineKm
	daysSince := now.Sub(baselineDate).Hours() / 24

	// Remaining margin expressed in days, taking the more urgent of the
	// distance and time intervals when both are defined.
	remainingDays := math.Inf(1)
	var kmRemaining *float64

	if item.KmInterval != nil {
		rem := *item.KmInterval - kmSince
		kmRemaining = &rem
		remainingDays = math.Min(remainingDays, rem/kmPerMonth*30)
	}
	if item.MonthInterval != nil {
		remainingDays = math.Min(remainingDays, float64(*item.MonthInterval)*30-daysSince)
	}

	status, urgent := e.classify(remainingDays)

	alert := Alert{
		VehicleID:     vehicle.ID,
		Plate:         vehicle.Plate,
		Item:          item,
		Status:        status,
		Urgent:        urgent,
		Criticality:   item.Criticality,
		MinCost:       item.MinCost,
		MaxCost:       item.MaxCost,
		KmRemaining:   kmRemaining,
		DaysRemaining: int(math.Round(remainingDays)),
	}
	alert.Message = e.message(alert)
	return alert
}

func (e *ScheduleEvaluator) classify(remainingDays float64) (DueStatus, bool) {
	switch {
	case remainingDays < 0:
		return StatusOverdue, false
	case remainingDays <= float64(e.cfg.UrgentDays):
		return StatusDueSoon, true
	case remainingDays <= float64(e.cfg.DueSoonDays):
		return StatusDueSoon, false
	default:
		return StatusUpToDate, false
	}
}

func (e *ScheduleEvaluator) message(a Alert) string {
	switch {
	case a.Status == StatusOverdue:
		return fmt.Sprintf("%s is overdue by %d days", a.Item.Name, -a.DaysRemaining)
	case a.Urgent:
		return fmt.Sprintf("%s is due within %d days, schedule it now", a.Item.Name, a.DaysRemaining)
	case a.Status == StatusDueSoon:
		return fmt.Sprintf("%s is coming up in about %d days", a.Item.Name, a.DaysRemaining)
	default:
		return fmt.Sprintf("%s is up to date", a.Item.Name)
	}
}

// monthlyDistance estimates the vehicle's trailing average km per month from
// its history, falling back to the configured assumption when there is not
// enough data to derive one.
func (e *ScheduleEvaluator) monthlyDistance(history []models.MaintenanceRecord) float64 {
	if len(history) < 2 {
		return e.cfg.FallbackKmPerMonth
	}
	first := history[0]
	last := history[len(history)-1]

	kmDelta := last.Km - first.Km
	months := last.Date.Sub(first.Date).Hours() / 24 / 30
	if kmDelta <= 0 || months <= 0 {
		return e.cfg.FallbackKmPerMonth
	}
	return kmDelta / months
}
