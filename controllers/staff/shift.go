package staff

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

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

func statusFor(err error) int {
	var (
		past      *scheduling.PastDateError
		dup       *scheduling.DuplicateShiftError
		immutable *scheduling.ImmutableRequestError
		trans     *scheduling.InvalidTransitionError
		invalid   *scheduling.ValidationError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &past):
		return fiber.StatusBadRequest
	case errors.As(err, &dup), errors.As(err, &immutable), errors.As(err, &trans):
		return fiber.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

type submitRequest struct {
	Date      string           `json:"date"`
	ShiftType models.ShiftType `json:"shift_type"`
	Notes     string           `json:"notes"`
}

// SubmitShiftRequest creates a pending shift request for the logged-in staff
// member. Booked appointments on the same day come back as a warning, they
// never block the submission.
func SubmitShiftRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var body submitRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	date, err := utils.ParseDate(body.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   "expected YYYY-MM-DD",
		})
	}

	result, err := engine().Submit(scheduling.SubmitInput{
		StaffID:     userID,
		Date:        date,
		ShiftType:   body.ShiftType,
		Notes:       body.Notes,
		RequestedBy: userID,
	})
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to submit shift request",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

type updateRequest struct {
	Date      *string           `json:"date,omitempty"`
	ShiftType *models.ShiftType `json:"shift_type,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

// UpdateShiftRequest edits one of the staff member's own pending requests.
func UpdateShiftRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request id",
			Error:   "id must be a positive integer",
		})
	}
	if err := ensureOwn(uint(id), userID); err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Cannot edit this shift request",
			Error:   err.Error(),
		})
	}

	var body updateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	patch := scheduling.UpdatePatch{ShiftType: body.ShiftType, Notes: body.Notes}
	if body.Date != nil {
		date, err := utils.ParseDate(*body.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date",
				Error:   "expected YYYY-MM-DD",
			})
		}
		patch.Date = &date
	}

	req, err := engine().Update(uint(id), patch)
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to update shift request",
			Error:   err.Error(),
		})
	}
	return c.JSON(req)
}

// WithdrawShiftRequest deletes one of the staff member's own pending
// requests.
func WithdrawShiftRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request id",
			Error:   "id must be a positive integer",
		})
	}
	if err := ensureOwn(uint(id), userID); err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Cannot withdraw this shift request",
			Error:   err.Error(),
		})
	}

	if err := engine().Withdraw(uint(id)); err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to withdraw shift request",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDayRequests returns the staff member's requests on one date, sorted by
// shift type, plus the day's booked appointments for the detail modal.
func GetDayRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	date, err := utils.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   "expected YYYY-MM-DD",
		})
	}

	reqs, err := engine().ListForDay(userID, date)
	if err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to list shift requests",
			Error:   err.Error(),
		})
	}
	booked, err := scheduling.ConflictsForDay(repos.NewBookingRepo(db.DB), userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booked slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"requests": reqs,
		"booked":   booked,
	})
}

// ensureOwn verifies the request belongs to the caller. Staff can only touch
// their own requests; managers use the back-office endpoints instead.
func ensureOwn(id uint, userID uint) error {
	var req models.ShiftRequest
	if err := db.DB.First(&req, id).Error; err != nil {
		return err
	}
	if req.StaffID != userID {
		return gorm.ErrRecordNotFound
	}
	return nil
}
