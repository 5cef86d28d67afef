package api

import (
	"motorlog/docs"
	"motorlog/internal/api/handlers"
	"motorlog/pkg/auth"
	"motorlog/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	vehicleHandler *handlers.VehicleHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	workshopHandler *handlers.WorkshopHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	vehicles := protected.Group("/vehicles")
	vehicles.Post("", vehicleHandler.Create)
	vehicles.Get("", vehicleHandler.List)
	vehicles.Get("/dashboard", vehicleHandler.Dashboard)
	vehicles.Post("/claim/:plate", vehicleHandler.Claim)
	vehicles.Put("/:id/odometer", vehicleHandler.UpdateOdometer)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	maintenances := protected.Group("/maintenances")
	maintenances.Post("", maintenanceHandler.Create)
	maintenances.Get("/vehicle/:vehicleId", maintenanceHandler.ListByVehicle)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	workshops := protected.Group("/workshops")
	workshops.Post("", workshopHandler.Create)
	workshops.Get("/me", workshopHandler.Get)
	workshops.Post("/overrides", workshopHandler.CreateOverride)
	workshops.Get("/overrides", workshopHandler.ListOverrides)
	workshops.Delete("/overrides/:id", workshopHandler.DeleteOverride)
	workshops.Get("/clients", workshopHandler.Clients)
	workshops.Get("/opportunities", workshopHandler.Opportunities)

	return app
}
