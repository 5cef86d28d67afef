package dto

type CreateWorkshopRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type WorkshopResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	CreatedAt string `json:"created_at"`
}

type CreatePriceOverrideRequest struct {
	Category     string   `json:"category" validate:"required,oneof=car motorcycle pickup truck van"`
	ItemName     string   `json:"item_name" validate:"required"`
	MinCost      float64  `json:"min_cost"`
	MaxCost      float64  `json:"max_cost"`
	LaborPercent *float64 `json:"labor_percent,omitempty"`
}

type PriceOverrideResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	ItemName     string   `json:"item_name"`
	MinCost      float64  `json:"min_cost"`
	MaxCost      float64  `json:"max_cost"`
	LaborPercent *float64 `json:"labor_percent,omitempty"`
}
