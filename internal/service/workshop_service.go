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
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrWorkshopExists   = errors.New("user already has a workshop")
	ErrInvalidOverride  = errors.New("invalid price override")
)

type WorkshopService struct {
	workshopRepo *repository.WorkshopRepository
	logger       *zap.Logger
}

func NewWorkshopService(workshopRepo *repository.WorkshopRepository, logger *zap.Logger) *WorkshopService {
	return &WorkshopService{
		workshopRepo: workshopRepo,
		logger:       logger,
	}
}

func (s *WorkshopService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkshopRequest) (*models.Workshop, error) {
	if existing, _ := s.workshopRepo.GetByUserID(ctx, userID); existing != nil {
		return nil, ErrWorkshopExists
	}

	now := time.Now()
	workshop := &models.Workshop{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Phone:     req.Phone,
		City:      req.City,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.workshopRepo.Create(ctx, workshop); err != nil {
		return nil, err
	}

	s.logger.Info("Workshop created", zap.String("workshop_id", workshop.ID.String()))
	return workshop, nil
}

// GetByUser resolves the workshop owned by the authenticated user.
func (s *WorkshopService) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Workshop, error) {
	workshop, err := s.workshopRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrWorkshopNotFound
	}
	return workshop, nil
}

// CreateOverride adds a workshop-scoped price override. Override ranges obey
// the same rules as catalog cost ranges: non-negative and min <= max.
func (s *WorkshopService) CreateOverride(ctx context.Context, workshopID uuid.UUID, req *dto.CreatePriceOverrideRequest) (*models.PriceOverride, error) {
	if req.MinCost < 0 || req.MaxCost < 0 || req.MinCost > req.MaxCost {
		return nil, ErrInvalidOverride
	}
	if req.LaborPercent != nil && (*req.LaborPercent < 0 || *req.LaborPercent > 1) {
		return nil, ErrInvalidOverride
	}

	now := time.Now()
	override := &models.PriceOverride{
		ID:           uuid.New(),
		WorkshopID:   workshopID,
		Category:     models.VehicleCategory(req.Category),
		ItemName:     req.ItemName,
		MinCost:      req.MinCost,
		MaxCost:      req.MaxCost,
		LaborPercent: req.LaborPercent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.workshopRepo.CreateOverride(ctx, override); err != nil {
		return nil, err
	}
	return override, nil
}

func (s *WorkshopService) ListOverrides(ctx context.Context, workshopID uuid.UUID) ([]*models.PriceOverride, error) {
	return s.workshopRepo.ListOverrides(ctx, workshopID)
}

func (s *WorkshopService) DeleteOverride(ctx context.Context, workshopID, overrideID uuid.UUID) error {
	return s.workshopRepo.DeleteOverride(ctx, workshopID, overrideID)
}
