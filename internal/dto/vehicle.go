package dto

type CreateVehicleRequest struct {
	Plate          string  `json:"plate" validate:"required"`
	Category       string  `json:"category" validate:"required,oneof=car motorcycle pickup truck van"`
	Brand          string  `json:"brand" validate:"required"`
	Model          string  `json:"model" validate:"required"`
	Year           int     `json:"year" validate:"required"`
	CurrentKm      float64 `json:"current_km"`
	RegistrationKm float64 `json:"registration_km"`
}

type UpdateOdometerRequest struct {
	CurrentKm float64 `json:"current_km" validate:"required"`
}

type VehicleResponse struct {
	ID             string  `json:"id"`
	OwnerID        *string `json:"owner_id,omitempty"`
	Plate          string  `json:"plate"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	CurrentKm      float64 `json:"current_km"`
	RegistrationKm float64 `json:"registration_km"`
	CreatedAt      string  `json:"created_at"`
}
