package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lotusspa/scheduler/cron"
	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/redis"
	"github.com/lotusspa/scheduler/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Lotus Spa scheduler")
	})
	routes.SetupServiceRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupShiftRequestRoutes(app)
	routes.SetupStaffRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
