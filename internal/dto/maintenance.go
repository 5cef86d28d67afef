package dto

type CreateMaintenanceRequest struct {
	VehicleID   string  `json:"vehicle_id" validate:"required,uuid"`
	Date        string  `json:"date" validate:"required"` // 2006-01-02
	Description string  `json:"description" validate:"required"`
	Km          float64 `json:"km" validate:"required"`
	Cost        float64 `json:"cost"`

	// Optional contact details for drivers without an account.
	PendingName  *string `json:"pending_name,omitempty"`
	PendingPhone *string `json:"pending_phone,omitempty"`
	PendingEmail *string `json:"pending_email,omitempty"`
}

type MaintenanceResponse struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicle_id"`
	WorkshopID  *string `json:"workshop_id,omitempty"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Km          float64 `json:"km"`
	Cost        float64 `json:"cost"`
	CreatedAt   string  `json:"created_at"`
}
