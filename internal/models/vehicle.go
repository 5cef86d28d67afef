package models

import (
	"time"

	"github.com/google/uuid"
)

type VehicleCategory string

const (
	CategoryCar        VehicleCategory = "car"
	CategoryMotorcycle VehicleCategory = "motorcycle"
	CategoryPickup     VehicleCategory = "pickup"
	CategoryTruck      VehicleCategory = "truck"
	CategoryVan        VehicleCategory = "van"
)

type Vehicle struct {
	ID             uuid.UUID       `db:"id"`
	OwnerID        *uuid.UUID      `db:"owner_id"` // nil while the vehicle is unclaimed
	Plate          string          `db:"plate"`
	Category       VehicleCategory `db:"category"`
	Brand          string          `db:"brand"`
	Model          string          `db:"model"`
	Year           int             `db:"year"`
	CurrentKm      float64         `db:"current_km"`
	RegistrationKm float64         `db:"registration_km"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
