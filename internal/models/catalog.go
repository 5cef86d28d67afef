package models

import (
	"time"

	"github.com/google/uuid"
)

type CriticalityLevel string

const (
	CriticalityLow      CriticalityLevel = "low"
	CriticalityMedium   CriticalityLevel = "medium"
	CriticalityHigh     CriticalityLevel = "high"
	CriticalityCritical CriticalityLevel = "critical"
)

// CatalogItem is a recommended maintenance task for a vehicle category.
// At least one of KmInterval/MonthInterval must be set; this is validated
// when the catalog is loaded, not at request time.
type CatalogItem struct {
	ID            uuid.UUID        `db:"id"`
	Category      VehicleCategory  `db:"category"`
	Name          string           `db:"name"`
	KmInterval    *float64         `db:"km_interval"`
	MonthInterval *int             `db:"month_interval"`
	Criticality   CriticalityLevel `db:"criticality"`
	MinCost       float64          `db:"min_cost"`
	MaxCost       float64          `db:"max_cost"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

// PriceOverride shadows a CatalogItem's default cost range for one workshop.
type PriceOverride struct {
	ID           uuid.UUID       `db:"id"`
	WorkshopID   uuid.UUID       `db:"workshop_id"`
	Category     VehicleCategory `db:"category"`
	ItemName     string          `db:"item_name"`
	MinCost      float64         `db:"min_cost"`
	MaxCost      float64         `db:"max_cost"`
	LaborPercent *float64        `db:"labor_percent"` // nil falls back to the criticality table
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
