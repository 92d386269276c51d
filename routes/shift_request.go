package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/controllers"
	"github.com/lotusspa/scheduler/middleware"
)

// SetupShiftRequestRoutes configures the back-office shift request routes
func SetupShiftRequestRoutes(app *fiber.App) {
	shifts := app.Group("/shift-requests", middleware.Protected())
	shifts.Get("/", middleware.RequireScheduler(), controllers.ListShiftRequests)
	shifts.Post("/:id/approve", middleware.RequireApprover(), controllers.ApproveShiftRequest)
	shifts.Post("/:id/reject", middleware.RequireApprover(), controllers.RejectShiftRequest)
}
