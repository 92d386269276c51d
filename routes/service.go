package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/controllers"
	"github.com/lotusspa/scheduler/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/eligible/:staffId", middleware.Protected(), controllers.GetEligibleServices)
}
