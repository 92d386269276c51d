package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/controllers"
	"github.com/lotusspa/scheduler/middleware"
)

// SetupAvailabilityRoutes configures the back-office availability editor routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability", middleware.Protected())
	availability.Get("/:staffId", controllers.ListAvailability)
	availability.Get("/:staffId/:date", controllers.GetAvailability)
	availability.Get("/:staffId/:date/conflicts", controllers.GetDayConflicts)
	availability.Put("/:staffId/:date", middleware.RequireScheduler(), controllers.CommitAvailability)
}
