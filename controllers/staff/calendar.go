package staff

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/utils"
)

// MonthCalendar renders the month-grid read view: per-day summaries of the
// staff member's shift requests. Purely a projection over the request store.
func MonthCalendar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	days, err := engine().MonthSummary(userID, year, time.Month(month))
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to build month calendar",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
