package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/models"
)

// RequireRole checks if the user holds one of the given roles
func RequireRole(roles ...models.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User ID not found in context",
			})
		}

		// Look up the staff profile synced from the directory service
		var staff models.StaffProfile
		if err := db.DB.First(&staff, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Staff profile not found",
			})
		}

		for _, role := range roles {
			if staff.Role == role {
				c.Locals("staff", &staff)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have the required role to perform this action",
		})
	}
}

// RequireApprover restricts a route to roles that may decide shift requests
func RequireApprover() fiber.Handler {
	return RequireRole(models.RoleManager, models.RoleAdmin)
}

// RequireScheduler restricts a route to back-office roles that edit staff
// availability
func RequireScheduler() fiber.Handler {
	return RequireRole(models.RoleManager, models.RoleAdmin, models.RoleReceptionist)
}
