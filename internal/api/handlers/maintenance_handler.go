package handlers

import (
	"motorlog/internal/dto"
	"motorlog/internal/models"
	"motorlog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
	workshopService    *service.WorkshopService
	logger             *zap.Logger
}

func NewMaintenanceHandler(
	maintenanceService *service.MaintenanceService,
	workshopService *service.WorkshopService,
	logger *zap.Logger,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		workshopService:    workshopService,
		logger:             logger,
	}
}

// Create godoc
// @Summary Record a maintenance service
// @Description Record a service for a vehicle. Workshop accounts attach their workshop as origin.
// @Tags maintenances
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Maintenance record"
// @Security Bearer
// @Success 201 {object} dto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/maintenances [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var workshopID *uuid.UUID
	if c.Locals("role") == string(models.RoleWorkshop) {
		if workshop, err := h.workshopService.GetByUser(c.Context(), userID); err == nil {
			workshopID = &workshop.ID
		}
	}

	rec, err := h.maintenanceService.Create(c.Context(), workshopID, &req)
	if err != nil {
		switch err {
		case service.ErrVehicleNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		case service.ErrInvalidDate:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		default:
			h.logger.Error("Failed to record maintenance", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record maintenance"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewMaintenanceResponse(rec))
}

// ListByVehicle godoc
// @Summary List a vehicle's maintenance history
// @Tags maintenances
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Security Bearer
// @Success 200 {array} dto.MaintenanceResponse
// @Router /api/v1/maintenances/vehicle/{vehicleId} [get]
func (h *MaintenanceHandler) ListByVehicle(c *fiber.Ctx) error {
	vehicleID, err := uuid.Parse(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	records, err := h.maintenanceService.ListByVehicle(c.Context(), vehicleID)
	if err != nil {
		h.logger.Error("Failed to list maintenance history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list maintenance history"})
	}

	responses := make([]dto.MaintenanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, dto.NewMaintenanceResponse(rec))
	}
	return c.JSON(responses)
}

// Delete godoc
// @Summary Delete a maintenance record
// @Tags maintenances
// @Param id path string true "Record ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/maintenances/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := h.maintenanceService.Delete(c.Context(), recordID); err != nil {
		if err == service.ErrMaintenanceNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
		}
		h.logger.Error("Failed to delete maintenance record", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete record"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
