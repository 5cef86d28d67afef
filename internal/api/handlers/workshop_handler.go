package handlers

import (
	"motorlog/internal/dto"
	"motorlog/internal/engine"
	"motorlog/internal/models"
	"motorlog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WorkshopHandler struct {
	workshopService *service.WorkshopService
	insightsService *service.InsightsService
	logger          *zap.Logger
}

func NewWorkshopHandler(
	workshopService *service.WorkshopService,
	insightsService *service.InsightsService,
	logger *zap.Logger,
) *WorkshopHandler {
	return &WorkshopHandler{
		workshopService: workshopService,
		insightsService: insightsService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create a workshop
// @Tags workshops
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkshopRequest true "Workshop"
// @Security Bearer
// @Success 201 {object} dto.WorkshopResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/workshops [post]
func (h *WorkshopHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.CreateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	workshop, err := h.workshopService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrWorkshopExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User already has a workshop"})
		}
		h.logger.Error("Failed to create workshop", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workshop"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkshopResponse(workshop))
}

// Get godoc
// @Summary Get own workshop
// @Tags workshops
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.WorkshopResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/workshops/me [get]
func (h *WorkshopHandler) Get(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewWorkshopResponse(workshop))
}

// CreateOverride godoc
// @Summary Add a price override
// @Description Override the catalog cost range for one service item
// @Tags workshops
// @Accept json
// @Produce json
// @Param request body dto.CreatePriceOverrideRequest true "Price override"
// @Security Bearer
// @Success 201 {object} dto.PriceOverrideResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/workshops/overrides [post]
func (h *WorkshopHandler) CreateOverride(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}

	var req dto.CreatePriceOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	override, err := h.workshopService.CreateOverride(c.Context(), workshop.ID, &req)
	if err != nil {
		if err == service.ErrInvalidOverride {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price override"})
		}
		h.logger.Error("Failed to create override", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create override"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewPriceOverrideResponse(override))
}

// ListOverrides godoc
// @Summary List price overrides
// @Tags workshops
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.PriceOverrideResponse
// @Router /api/v1/workshops/overrides [get]
func (h *WorkshopHandler) ListOverrides(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}

	overrides, err := h.workshopService.ListOverrides(c.Context(), workshop.ID)
	if err != nil {
		h.logger.Error("Failed to list overrides", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list overrides"})
	}

	responses := make([]dto.PriceOverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, dto.NewPriceOverrideResponse(o))
	}
	return c.JSON(responses)
}

// DeleteOverride godoc
// @Summary Delete a price override
// @Tags workshops
// @Param id path string true "Override ID"
// @Security Bearer
// @Success 204
// @Router /api/v1/workshops/overrides/{id} [delete]
func (h *WorkshopHandler) DeleteOverride(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}

	overrideID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid override ID"})
	}

	if err := h.workshopService.DeleteOverride(c.Context(), workshop.ID, overrideID); err != nil {
		h.logger.Error("Failed to delete override", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete override"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Clients godoc
// @Summary Segmented client list
// @Description Clients grouped from the workshop's history, with loyalty score, segment and return prediction
// @Tags workshops
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ClientSummaryResponse
// @Router /api/v1/workshops/clients [get]
func (h *WorkshopHandler) Clients(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}

	clients, err := h.insightsService.WorkshopClients(c.Context(), workshop.ID)
	if err != nil {
		h.logger.Error("Failed to build client list", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build client list"})
	}

	return c.JSON(clients)
}

// Opportunities godoc
// @Summary Ranked revenue opportunities
// @Description Clients with open alerts, valued and ranked for outreach
// @Tags workshops
// @Produce json
// @Param sort query string false "Sort key: criticality, revenue or days" default(criticality)
// @Param criticality query string false "Keep only opportunities with at least one alert at this level"
// @Security Bearer
// @Success 200 {array} dto.OpportunityResponse
// @Router /api/v1/workshops/opportunities [get]
func (h *WorkshopHandler) Opportunities(c *fiber.Ctx) error {
	workshop, err := h.ownWorkshop(c)
	if err != nil {
		return err
	}

	sortKey := engine.SortKey(c.Query("sort", string(engine.SortByCriticality)))

	var criticalityFilter *models.CriticalityLevel
	if raw := c.Query("criticality"); raw != "" {
		level := models.CriticalityLevel(raw)
		criticalityFilter = &level
	}

	opportunities, err := h.insightsService.WorkshopOpportunities(c.Context(), workshop.ID, sortKey, criticalityFilter)
	if err != nil {
		h.logger.Error("Failed to rank opportunities", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to rank opportunities"})
	}

	return c.JSON(opportunities)
}

// ownWorkshop resolves the caller's workshop. Errors are fiber errors so the
// app-level error handler renders them as {"error": ...} JSON.
func (h *WorkshopHandler) ownWorkshop(c *fiber.Ctx) (*models.Workshop, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	workshop, err := h.workshopService.GetByUser(c.Context(), userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Workshop not found")
	}
	return workshop, nil
}
