package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/controllers/staff"
	"github.com/lotusspa/scheduler/middleware"
)

// SetupStaffRoutes configures staff self-service routes
func SetupStaffRoutes(app *fiber.App) {
	staffGroup := app.Group("/staff", middleware.Protected())
	staffGroup.Get("/calendar", staff.MonthCalendar)
	staffGroup.Get("/shift-requests/:date", staff.GetDayRequests)
	staffGroup.Post("/shift-requests", staff.SubmitShiftRequest)
	staffGroup.Patch("/shift-requests/:id", staff.UpdateShiftRequest)
	staffGroup.Delete("/shift-requests/:id", staff.WithdrawShiftRequest)
}
