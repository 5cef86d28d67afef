package service

import (
	"context"
	"time"

	"motorlog/internal/dto"
	"motorlog/internal/engine"
	"motorlog/internal/models"
	"motorlog/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InsightsService runs the maintenance intelligence engine over snapshots
// fetched from the repositories. The engine itself is pure; this service owns
// all I/O around it and never writes back to the store.
type InsightsService struct {
	evaluator       *engine.ScheduleEvaluator
	vehicleRepo     *repository.VehicleRepository
	maintenanceRepo *repository.MaintenanceRepository
	workshopRepo    *repository.WorkshopRepository
	userRepo        *repository.UserRepository
	logger          *zap.Logger
}

func NewInsightsService(
	evaluator *engine.ScheduleEvaluator,
	vehicleRepo *repository.VehicleRepository,
	maintenanceRepo *repository.MaintenanceRepository,
	workshopRepo *repository.WorkshopRepository,
	userRepo *repository.UserRepository,
	logger *zap.Logger,
) *InsightsService {
	return &InsightsService{
		evaluator:       evaluator,
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		workshopRepo:    workshopRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// OwnerDashboard evaluates every vehicle of one owner against the catalog.
func (s *InsightsService) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) ([]dto.VehicleDashboardResponse, error) {
	vehicles, err := s.vehicleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dashboards := make([]dto.VehicleDashboardResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		history, err := s.maintenanceRepo.ListByVehicle(ctx, vehicle.ID)
		if err != nil {
			return nil, err
		}

		alerts := s.evaluator.Evaluate(*vehicle, derefRecords(history), now)
		dashboards = append(dashboards, dto.VehicleDashboardResponse{
			Vehicle: dto.NewVehicleResponse(vehicle),
			Alerts:  dto.NewAlertResponses(alerts),
		})
	}
	return dashboards, nil
}

// WorkshopClients aggregates the workshop's history into scored, segmented
// client summaries with a return prediction each, ordered for display.
func (s *InsightsService) WorkshopClients(ctx context.Context, workshopID uuid.UUID) ([]dto.ClientSummaryResponse, error) {
	summaries, err := s.clientSummaries(ctx, workshopID, time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.ClientSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, dto.NewClientSummaryResponse(summary, engine.PredictReturn(summary, now)))
	}
	return responses, nil
}

// WorkshopOpportunities builds the ranked outreach list: evaluates every
// client vehicle's schedule, prices the open alerts with the workshop's
// overrides and ranks the result.
func (s *InsightsService) WorkshopOpportunities(ctx context.Context, workshopID uuid.UUID, sortKey engine.SortKey, criticalityFilter *models.CriticalityLevel) ([]dto.OpportunityResponse, error) {
	now := time.Now()
	summaries, err := s.clientSummaries(ctx, workshopID, now)
	if err != nil {
		return nil, err
	}

	alertsByVehicle := make(map[uuid.UUID][]engine.Alert, len(summaries))
	for _, summary := range summaries {
		// Due status considers the vehicle's full history, not only the
		// services performed at this workshop.
		history, err := s.maintenanceRepo.ListByVehicle(ctx, summary.Vehicle.ID)
		if err != nil {
			return nil, err
		}
		alertsByVehicle[summary.Vehicle.ID] = s.evaluator.Evaluate(summary.Vehicle, derefRecords(history), now)
	}

	overrides, err := s.workshopRepo.ListOverrides(ctx, workshopID)
	if err != nil {
		return nil, err
	}
	overrideMap := engine.OverrideMap(derefOverrides(overrides))

	opportunities := engine.RankOpportunities(summaries, alertsByVehicle, overrideMap, sortKey, criticalityFilter, now)

	s.logger.Info("Opportunities ranked",
		zap.String("workshop_id", workshopID.String()),
		zap.Int("clients", len(summaries)),
		zap.Int("opportunities", len(opportunities)),
	)

	responses := make([]dto.OpportunityResponse, 0, len(opportunities))
	for _, opp := range opportunities {
		responses = append(responses, dto.NewOpportunityResponse(opp, engine.PredictReturn(opp.Client, now), outreachMessage(opp)))
	}
	return responses, nil
}

// clientSummaries fetches the workshop snapshot and runs aggregation and
// scoring. Population average spend is computed over the workshop's clients.
func (s *InsightsService) clientSummaries(ctx context.Context, workshopID uuid.UUID, now time.Time) ([]engine.ClientSummary, error) {
	records, err := s.maintenanceRepo.ListByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]bool)
	for _, rec := range records {
		if !seen[rec.VehicleID] {
			seen[rec.VehicleID] = true
			vehicleIDs = append(vehicleIDs, rec.VehicleID)
		}
	}

	vehicles, err := s.vehicleRepo.ListByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]uuid.UUID, 0, len(vehicles))
	for _, v := range vehicles {
		if v.OwnerID != nil {
			ownerIDs = append(ownerIDs, *v.OwnerID)
		}
	}

	owners := make(map[uuid.UUID]models.User)
	users, err := s.userRepo.ListByIDs(ctx, ownerIDs)
	if err != nil {
		// Missing profiles degrade to pending contact data, never fatal.
		s.logger.Warn("Failed to load owner profiles", zap.Error(err))
	} else {
		for _, u := range users {
			owners[u.ID] = *u
		}
	}

	summaries := engine.AggregateClients(derefRecords(records), derefVehicles(vehicles), owners)

	var totalSpend float64
	for _, summary := range summaries {
		totalSpend += summary.TotalSpend
	}
	var averageSpend float64
	if len(summaries) > 0 {
		averageSpend = totalSpend / float64(len(summaries))
	}

	for i := range summaries {
		daysSince := int(now.Sub(summaries[i].LastVisit).Hours() / 24)
		summaries[i].Score, summaries[i].Segment = engine.ScoreClient(summaries[i], averageSpend, daysSince)
	}
	engine.SortClientSummaries(summaries)
	return summaries, nil
}

func derefRecords(records []*models.MaintenanceRecord) []models.MaintenanceRecord {
	out := make([]models.MaintenanceRecord, 0, len(records))
	for _, r := range records {
		out = append(out, *r)
	}
	return out
}

func derefVehicles(vehicles []*models.Vehicle) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, *v)
	}
	return out
}

func derefOverrides(overrides []*models.PriceOverride) []models.PriceOverride {
	out := make([]models.PriceOverride, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, *o)
	}
	return out
}
