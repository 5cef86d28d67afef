package engine

import (
	"math"

	"motorlog/internal/models"
)

// Estimate is a parts/labor/total cost range for a single alert. Bounds are
// computed independently: min labor derives from min parts, max from max.
type Estimate struct {
	MinParts float64
	MaxParts float64
	MinLabor float64
	MaxLabor float64
	MinTotal float64
	MaxTotal float64
}

// laborPercentByCriticality is the default labor share applied on top of
// parts cost when a workshop has not configured its own percentage.
var laborPercentByCriticality = map[models.CriticalityLevel]float64{
	models.CriticalityCritical: 0.35,
	models.CriticalityHigh:     0.30,
	models.CriticalityMedium:   0.25,
	models.CriticalityLow:      0.20,
}

// LaborPercentFor returns the default labor percentage for a criticality level.
func LaborPercentFor(level models.CriticalityLevel) float64 {
	if pct, ok := laborPercentByCriticality[level]; ok {
		return pct
	}
	return laborPercentByCriticality[models.CriticalityLow]
}

// OverrideKey identifies a workshop price override for a (category, item) pair.
type OverrideKey struct {
	Category models.VehicleCategory
	Item     string
}

// OverrideMap indexes a workshop's price overrides for estimation lookups.
// Item names are normalized the same way record descriptions are matched.
func OverrideMap(overrides []models.PriceOverride) map[OverrideKey]models.PriceOverride {
	m := make(map[OverrideKey]models.PriceOverride, len(overrides))
	for _, o := range overrides {
		m[OverrideKey{Category: o.Category, Item: normalizeService(o.ItemName)}] = o
	}
	return m
}

// EstimateRevenue prices one alert: override range when the workshop has one
// for the item, otherwise the catalog default range, plus a criticality-driven
// labor share per bound.
func EstimateRevenue(alert Alert, overrides map[OverrideKey]models.PriceOverride) Estimate {
	minParts := alert.MinCost
	maxParts := alert.MaxCost
	laborPct := LaborPercentFor(alert.Criticality)

	key := OverrideKey{Category: alert.Item.Category, Item: normalizeService(alert.Item.Name)}
	if o, ok := overrides[key]; ok {
		minParts = o.MinCost
		maxParts = o.MaxCost
		if o.LaborPercent != nil {
			laborPct = *o.LaborPercent
		}
	}

	minLabor := math.Round(minParts * laborPct)
	maxLabor := math.Round(maxParts * laborPct)

	return Estimate{
		MinParts: minParts,
		MaxParts: maxParts,
		MinLabor: minLabor,
		MaxLabor: maxLabor,
		MinTotal: minParts + minLabor,
		MaxTotal: maxParts + maxLabor,
	}
}
