package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord is immutable once created; the only allowed mutation is deletion.
type MaintenanceRecord struct {
	ID          uuid.UUID  `db:"id"`
	VehicleID   uuid.UUID  `db:"vehicle_id"`
	WorkshopID  *uuid.UUID `db:"workshop_id"` // nil for self-reported services
	Date        time.Time  `db:"date"`
	Description string     `db:"description"`
	Km          float64    `db:"km"` // odometer at time of service
	Cost        float64    `db:"cost"`

	// Contact details entered by a workshop for drivers without an account.
	// A registered owner profile takes precedence over these.
	PendingName  *string `db:"pending_name"`
	PendingPhone *string `db:"pending_phone"`
	PendingEmail *string `db:"pending_email"`

	CreatedAt time.Time `db:"created_at"`
}
