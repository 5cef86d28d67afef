package dto

import (
	"fmt"
	"time"

	"motorlog/internal/engine"
	"motorlog/internal/models"
)

const dateLayout = "2006-01-02"

func NewVehicleResponse(v *models.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:             v.ID.String(),
		Plate:          v.Plate,
		Category:       string(v.Category),
		Brand:          v.Brand,
		Model:          v.Model,
		Year:           v.Year,
		CurrentKm:      v.CurrentKm,
		RegistrationKm: v.RegistrationKm,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
	if v.OwnerID != nil {
		id := v.OwnerID.String()
		resp.OwnerID = &id
	}
	return resp
}

func NewMaintenanceResponse(rec *models.MaintenanceRecord) MaintenanceResponse {
	resp := MaintenanceResponse{
		ID:          rec.ID.String(),
		VehicleID:   rec.VehicleID.String(),
		Date:        rec.Date.Format(dateLayout),
		Description: rec.Description,
		Km:          rec.Km,
		Cost:        rec.Cost,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.WorkshopID != nil {
		id := rec.WorkshopID.String()
		resp.WorkshopID = &id
	}
	return resp
}

func NewWorkshopResponse(w *models.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Phone:     w.Phone,
		City:      w.City,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

func NewPriceOverrideResponse(o *models.PriceOverride) PriceOverrideResponse {
	return PriceOverrideResponse{
		ID:           o.ID.String(),
		Category:     string(o.Category),
		ItemName:     o.ItemName,
		MinCost:      o.MinCost,
		MaxCost:      o.MaxCost,
		LaborPercent: o.LaborPercent,
	}
}

func NewAlertResponse(a engine.Alert) AlertResponse {
	return AlertResponse{
		VehicleID:     a.VehicleID.String(),
		Plate:         a.Plate,
		ItemName:      a.Item.Name,
		Status:        string(a.Status),
		Urgent:        a.Urgent,
		Message:       a.Message,
		Criticality:   string(a.Criticality),
		MinCost:       a.MinCost,
		MaxCost:       a.MaxCost,
		KmRemaining:   a.KmRemaining,
		DaysRemaining: a.DaysRemaining,
	}
}

func NewAlertResponses(alerts []engine.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, NewAlertResponse(a))
	}
	return out
}

func NewClientSummaryResponse(summary engine.ClientSummary, prediction engine.Prediction) ClientSummaryResponse {
	resp := ClientSummaryResponse{
		ClientKey:       summary.ClientKey,
		Registered:      summary.Registered,
		Plate:           summary.Vehicle.Plate,
		Vehicle:         fmt.Sprintf("%s %s %d", summary.Vehicle.Brand, summary.Vehicle.Model, summary.Vehicle.Year),
		Name:            summary.Name,
		Phone:           summary.Phone,
		Email:           summary.Email,
		VisitCount:      summary.VisitCount,
		TotalSpend:      summary.TotalSpend,
		LastKm:          summary.LastKm,
		Score:           summary.Score,
		Segment:         string(summary.Segment),
		DaysUntilReturn: prediction.DaysUntilReturn,
		ReturnOverdue:   prediction.IsOverdue,
	}
	if !summary.LastVisit.IsZero() {
		resp.LastVisit = summary.LastVisit.Format(dateLayout)
	}
	return resp
}

func NewOpportunityResponse(opp engine.Opportunity, prediction engine.Prediction, outreachMessage string) OpportunityResponse {
	return OpportunityResponse{
		Client:             NewClientSummaryResponse(opp.Client, prediction),
		Alerts:             NewAlertResponses(opp.Alerts),
		CriticalCount:      opp.CriticalCount,
		HighCount:          opp.HighCount,
		MediumCount:        opp.MediumCount,
		LowCount:           opp.LowCount,
		MinTotal:           opp.MinTotal,
		MaxTotal:           opp.MaxTotal,
		DaysSinceLastVisit: opp.DaysSinceLastVisit,
		OutreachMessage:    outreachMessage,
	}
}
