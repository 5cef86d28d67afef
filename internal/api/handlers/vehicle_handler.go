package handlers

import (
	"motorlog/internal/dto"
	"motorlog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	vehicleService  *service.VehicleService
	insightsService *service.InsightsService
	logger          *zap.Logger
}

func NewVehicleHandler(vehicleService *service.VehicleService, insightsService *service.InsightsService, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:  vehicleService,
		insightsService: insightsService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Register a vehicle
// @Description Register a vehicle owned by the authenticated user
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Vehicle"
// @Security Bearer
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	vehicle, err := h.vehicleService.Create(c.Context(), &userID, &req)
	if err != nil {
		if err == service.ErrPlateTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Plate already registered"})
		}
		h.logger.Error("Failed to create vehicle", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewVehicleResponse(vehicle))
}

// List godoc
// @Summary List own vehicles
// @Tags vehicles
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.VehicleResponse
// @Router /api/v1/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	vehicles, err := h.vehicleService.ListByOwner(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list vehicles", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list vehicles"})
	}

	responses := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, dto.NewVehicleResponse(v))
	}
	return c.JSON(responses)
}

// UpdateOdometer godoc
// @Summary Update a vehicle's odometer
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateOdometerRequest true "Odometer"
// @Security Bearer
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vehicles/{id}/odometer [put]
func (h *VehicleHandler) UpdateOdometer(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var req dto.UpdateOdometerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	vehicle, err := h.vehicleService.UpdateOdometer(c.Context(), userID, vehicleID, req.CurrentKm)
	if err != nil {
		switch err {
		case service.ErrVehicleNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		case service.ErrNotVehicleOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Vehicle belongs to another user"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(dto.NewVehicleResponse(vehicle))
}

// Claim godoc
// @Summary Claim an unclaimed vehicle by plate
// @Tags vehicles
// @Produce json
// @Param plate path string true "Vehicle plate"
// @Security Bearer
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/vehicles/claim/{plate} [post]
func (h *VehicleHandler) Claim(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	vehicle, err := h.vehicleService.Claim(c.Context(), userID, c.Params("plate"))
	if err != nil {
		switch err {
		case service.ErrVehicleNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		case service.ErrVehicleClaimed:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Vehicle already claimed"})
		default:
			h.logger.Error("Failed to claim vehicle", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to claim vehicle"})
		}
	}

	return c.JSON(dto.NewVehicleResponse(vehicle))
}

// Delete godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Param id path string true "Vehicle ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	if err := h.vehicleService.Delete(c.Context(), userID, vehicleID); err != nil {
		switch err {
		case service.ErrVehicleNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		case service.ErrNotVehicleOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Vehicle belongs to another user"})
		default:
			h.logger.Error("Failed to delete vehicle", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle"})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Dashboard godoc
// @Summary Maintenance alerts for all own vehicles
// @Description Evaluates every vehicle's schedule and returns due/overdue alerts
// @Tags vehicles
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.VehicleDashboardResponse
// @Router /api/v1/vehicles/dashboard [get]
func (h *VehicleHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	dashboards, err := h.insightsService.OwnerDashboard(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build dashboard"})
	}

	return c.JSON(dashboards)
}
