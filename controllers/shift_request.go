package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/repos"
	"github.com/lotusspa/scheduler/scheduling"
	"github.com/lotusspa/scheduler/utils"
)

var (
	engineOnce sync.Once
	engineInst *scheduling.Engine
)

func engine() *scheduling.Engine {
	engineOnce.Do(func() {
		engineInst = scheduling.NewEngine(
			repos.NewShiftRequestRepo(db.DB),
			repos.NewBookingRepo(db.DB),
		)
	})
	return engineInst
}

// ListShiftRequests is the back-office query across all staff: optional
// staff_id, required from/to range, optional status filter.
func ListShiftRequests(c *fiber.Ctx) error {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid from date",
			Error:   "expected YYYY-MM-DD",
		})
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid to date",
			Error:   "expected YYYY-MM-DD",
		})
	}
	staffID := uint(c.QueryInt("staff_id")) // 0 = all staff
	status := models.ShiftStatus(c.Query("status"))

	reqs, err := engine().ListRequests(staffID, from, to, status)
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to list shift requests",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"requests": reqs,
		"count":    len(reqs),
	})
}

// ApproveShiftRequest transitions a pending request to approved, stamping
// the deciding manager. Route is guarded by RequireApprover.
func ApproveShiftRequest(c *fiber.Ctx) error {
	return decideShiftRequest(c, models.ShiftApproved)
}

// RejectShiftRequest transitions a pending request to rejected.
func RejectShiftRequest(c *fiber.Ctx) error {
	return decideShiftRequest(c, models.ShiftRejected)
}

func decideShiftRequest(c *fiber.Ctx, to models.ShiftStatus) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request id",
			Error:   "id must be a positive integer",
		})
	}
	managerID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var req *models.ShiftRequest
	if to == models.ShiftApproved {
		req, err = engine().Approve(uint(id), managerID)
	} else {
		req, err = engine().Reject(uint(id), managerID)
	}
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to update shift request",
			Error:   err.Error(),
		})
	}
	return c.JSON(req)
}
