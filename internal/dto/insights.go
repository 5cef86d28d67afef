package dto

type AlertResponse struct {
	VehicleID     string   `json:"vehicle_id"`
	Plate         string   `json:"plate"`
	ItemName      string   `json:"item_name"`
	Status        string   `json:"status"`
	Urgent        bool     `json:"urgent"`
	Message       string   `json:"message"`
	Criticality   string   `json:"criticality"`
	MinCost       float64  `json:"min_cost"`
	MaxCost       float64  `json:"max_cost"`
	KmRemaining   *float64 `json:"km_remaining,omitempty"`
	DaysRemaining int      `json:"days_remaining"`
}

type VehicleDashboardResponse struct {
	Vehicle VehicleResponse `json:"vehicle"`
	Alerts  []AlertResponse `json:"alerts"`
}

type ClientSummaryResponse struct {
	ClientKey  string  `json:"client_key"`
	Registered bool    `json:"registered"`
	Plate      string  `json:"plate"`
	Vehicle    string  `json:"vehicle"`
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	VisitCount int     `json:"visit_count"`
	TotalSpend float64 `json:"total_spend"`
	LastVisit  string  `json:"last_visit"`
	LastKm     float64 `json:"last_km"`
	Score      int     `json:"score"`
	Segment    string  `json:"segment"`

	DaysUntilReturn int  `json:"days_until_return"`
	ReturnOverdue   bool `json:"return_overdue"`
}

type OpportunityResponse struct {
	Client             ClientSummaryResponse `json:"client"`
	Alerts             []AlertResponse       `json:"alerts"`
	CriticalCount      int                   `json:"critical_count"`
	HighCount          int                   `json:"high_count"`
	MediumCount        int                   `json:"medium_count"`
	LowCount           int                   `json:"low_count"`
	MinTotal           float64               `json:"min_total"`
	MaxTotal           float64               `json:"max_total"`
	DaysSinceLastVisit *int                  `json:"days_since_last_visit,omitempty"`

	// OutreachMessage is the rendered text a notification channel can send
	// as-is; the engine itself never sends anything.
	OutreachMessage string `json:"outreach_message"`
}
