package service

import (
	"context"
	"errors"
	"time"

	"motorlog/internal/dto"
	"motorlog/internal/models"
	"motorlog/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
	ErrInvalidDate         = errors.New("invalid maintenance date")
)

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	vehicleRepo     *repository.VehicleRepository
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo *repository.MaintenanceRepository,
	vehicleRepo *repository.VehicleRepository,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
	}
}

// Create persists a maintenance record. workshopID is nil for self-reported
// services by an owner. The vehicle's odometer advances with the service when
// the reported km is ahead of it.
func (s *MaintenanceService) Create(ctx context.Context, workshopID *uuid.UUID, req *dto.CreateMaintenanceRequest) (*models.MaintenanceRecord, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, ErrVehicleNotFound
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, ErrVehicleNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	rec := &models.MaintenanceRecord{
		ID:           uuid.New(),
		VehicleID:    vehicle.ID,
		WorkshopID:   workshopID,
		Date:         date,
		Description:  req.Description,
		Km:           req.Km,
		Cost:         req.Cost,
		PendingName:  req.PendingName,
		PendingPhone: req.PendingPhone,
		PendingEmail: req.PendingEmail,
		CreatedAt:    time.Now(),
	}

	if err := s.maintenanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if req.Km > vehicle.CurrentKm {
		vehicle.CurrentKm = req.Km
		vehicle.UpdatedAt = time.Now()
		if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
			s.logger.Warn("Failed to advance vehicle odometer",
				zap.String("vehicle_id", vehicle.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Maintenance recorded",
		zap.String("record_id", rec.ID.String()),
		zap.String("vehicle_id", vehicle.ID.String()),
	)
	return rec, nil
}

func (s *MaintenanceService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceRecord, error) {
	return s.maintenanceRepo.ListByVehicle(ctx, vehicleID)
}

// Delete is the only mutation a record supports after creation.
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.maintenanceRepo.GetByID(ctx, id); err != nil {
		return ErrMaintenanceNotFound
	}
	return s.maintenanceRepo.Delete(ctx, id)
}
