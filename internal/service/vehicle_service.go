package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"motorlog/internal/dto"
	"motorlog/internal/models"
	"motorlog/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrPlateTaken      = errors.New("plate already registered")
	ErrNotVehicleOwner = errors.New("vehicle belongs to another user")
	ErrVehicleClaimed  = errors.New("vehicle already claimed")
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	logger      *zap.Logger
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (s *VehicleService) Create(ctx context.Context, ownerID *uuid.UUID, req *dto.CreateVehicleRequest) (*models.Vehicle, error) {
	plate := normalizePlate(req.Plate)

	if existing, _ := s.vehicleRepo.GetByPlate(ctx, plate); existing != nil {
		return nil, ErrPlateTaken
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Plate:          plate,
		Category:       models.VehicleCategory(req.Category),
		Brand:          req.Brand,
		Model:          req.Model,
		Year:           req.Year,
		CurrentKm:      req.CurrentKm,
		RegistrationKm: req.RegistrationKm,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if vehicle.RegistrationKm == 0 {
		vehicle.RegistrationKm = req.CurrentKm
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("plate", vehicle.Plate),
	)
	return vehicle, nil
}

func (s *VehicleService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	return s.vehicleRepo.ListByOwner(ctx, ownerID)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// UpdateOdometer records a new odometer reading. Readings never go backwards;
// the interval math downstream assumes a non-decreasing odometer.
func (s *VehicleService) UpdateOdometer(ctx context.Context, ownerID, vehicleID uuid.UUID, currentKm float64) (*models.Vehicle, error) {
	vehicle, err := s.ownedVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if currentKm < vehicle.CurrentKm {
		return nil, errors.New("odometer reading cannot decrease")
	}

	vehicle.CurrentKm = currentKm
	vehicle.UpdatedAt = time.Now()
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Claim attaches an unclaimed vehicle (created by a workshop from a plate)
// to a registered owner.
func (s *VehicleService) Claim(ctx context.Context, ownerID uuid.UUID, plate string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, normalizePlate(plate))
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.OwnerID != nil {
		return nil, ErrVehicleClaimed
	}

	vehicle.OwnerID = &ownerID
	vehicle.UpdatedAt = time.Now()
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("Vehicle claimed",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, ownerID, vehicleID uuid.UUID) error {
	if _, err := s.ownedVehicle(ctx, ownerID, vehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, vehicleID)
}

func (s *VehicleService) ownedVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.OwnerID == nil || *vehicle.OwnerID != ownerID {
		return nil, ErrNotVehicleOwner
	}
	return vehicle, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
}
