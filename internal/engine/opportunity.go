package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"motorlog/internal/models"
)

type SortKey string

const (
	SortByCriticality SortKey = "criticality"
	SortByRevenue     SortKey = "revenue"
	SortByDays        SortKey = "days"
)

// Opportunity is one client's open alerts valued as an outreach target.
// Opportunities are recomputed per request and never cached.
type Opportunity struct {
	Client ClientSummary
	Alerts []Alert

	CriticalCount int
	HighCount     int
	MediumCount   int
	LowCount      int

	MinTotal float64
	MaxTotal float64

	// DaysSinceLastVisit is nil for clients without a recorded visit.
	DaysSinceLastVisit *int
}

// RankOpportunities builds the ranked outreach list for a workshop: every
// client with at least one open (due soon or overdue) alert becomes an
// opportunity valued by the sum of its alerts' revenue estimates.
func RankOpportunities(
	clients []ClientSummary,
	alertsByVehicle map[uuid.UUID][]Alert,
	overrides map[OverrideKey]models.PriceOverride,
	sortKey SortKey,
	criticalityFilter *models.CriticalityLevel,
	now time.Time,
) []Opportunity {
	opportunities := make([]Opportunity, 0, len(clients))

	for _, client := range clients {
		open := openAlerts(alertsByVehicle[client.Vehicle.ID])
		if len(open) == 0 {
			continue
		}

		opp := Opportunity{Client: client, Alerts: open}
		for _, alert := range open {
			switch alert.Criticality {
			case models.CriticalityCritical:
				opp.CriticalCount++
			case models.CriticalityHigh:
				opp.HighCount++
			case models.CriticalityMedium:
				opp.MediumCount++
			default:
				opp.LowCount++
			}
			est := EstimateRevenue(alert, overrides)
			opp.MinTotal += est.MinTotal
			opp.MaxTotal += est.MaxTotal
		}

		if !client.LastVisit.IsZero() {
			days := daysBetween(client.LastVisit, now)
			opp.DaysSinceLastVisit = &days
		}

		if criticalityFilter != nil && countAtLevel(opp, *criticalityFilter) == 0 {
			continue
		}
		opportunities = append(opportunities, opp)
	}

	sortOpportunities(opportunities, sortKey)
	return opportunities
}

func openAlerts(alerts []Alert) []Alert {
	open := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status != StatusUpToDate {
			open = append(open, a)
		}
	}
	return open
}

func countAtLevel(opp Opportunity, level models.CriticalityLevel) int {
	switch level {
	case models.CriticalityCritical:
		return opp.CriticalCount
	case models.CriticalityHigh:
		return opp.HighCount
	case models.CriticalityMedium:
		return opp.MediumCount
	default:
		return opp.LowCount
	}
}

func sortOpportunities(opportunities []Opportunity, sortKey SortKey) {
	switch sortKey {
	case SortByRevenue:
		sort.SliceStable(opportunities, func(i, j int) bool {
			return opportunities[i].MaxTotal > opportunities[j].MaxTotal
		})
	case SortByDays:
		sort.SliceStable(opportunities, func(i, j int) bool {
			di, dj := opportunities[i].DaysSinceLastVisit, opportunities[j].DaysSinceLastVisit
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di > *dj
		})
	default: // SortByCriticality
		sort.SliceStable(opportunities, func(i, j int) bool {
			if opportunities[i].CriticalCount != opportunities[j].CriticalCount {
				return opportunities[i].CriticalCount > opportunities[j].CriticalCount
			}
			if opportunities[i].HighCount != opportunities[j].HighCount {
				return opportunities[i].HighCount > opportunities[j].HighCount
			}
			return opportunities[i].MaxTotal > opportunities[j].MaxTotal
		})
	}
}
