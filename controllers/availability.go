package controllers

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/repos"
	"github.com/lotusspa/scheduler/scheduling"
	"github.com/lotusspa/scheduler/utils"
)

var (
	editorOnce sync.Once
	editorInst *scheduling.Editor
)

func editor() *scheduling.Editor {
	editorOnce.Do(func() {
		editorInst = scheduling.NewEditor(
			repos.NewAvailabilityRepo(db.DB),
			repos.NewBookingRepo(db.DB),
		)
	})
	return editorInst
}

// statusFor maps the scheduling error taxonomy to HTTP statuses so the UI
// can render a specific message per failure.
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

func parseStaffAndDate(c *fiber.Ctx) (uint, time.Time, error) {
	staffID, err := c.ParamsInt("staffId")
	if err != nil || staffID <= 0 {
		return 0, time.Time{}, errors.New("invalid staff id")
	}
	date, err := utils.ParseDate(c.Params("date"))
	if err != nil {
		return 0, time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return uint(staffID), date, nil
}

// GetAvailability returns the saved slot set for a staff/date together with
// the day's booked appointments, so the editor can flag conflicts instead of
// silently erasing booked commitments.
func GetAvailability(c *fiber.Ctx) error {
	staffID, date, err := parseStaffAndDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid path parameters",
			Error:   err.Error(),
		})
	}

	state, err := editor().Load(staffID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load availability",
			Error:   err.Error(),
		})
	}

	conflicts, err := editor().Conflicts(staffID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booked slots",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"staff_id": staffID,
		"date":     date.Format(utils.DateLayout),
		"slots":    state.Slots,
		"booked":   conflicts,
	})
}

type commitAvailabilityRequest struct {
	Slots []models.TimeSlotAvailability `json:"slots"`
}

// CommitAvailability replaces the full slot set for a staff/date. Technician
// slots with no services are dropped; an empty final set deletes the day.
func CommitAvailability(c *fiber.Ctx) error {
	staffID, date, err := parseStaffAndDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid path parameters",
			Error:   err.Error(),
		})
	}

	var body commitAvailabilityRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var staff models.StaffProfile
	if err := db.DB.First(&staff, staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}

	state := scheduling.EditorState{Slots: body.Slots}
	if err := editor().Commit(&staff, date, state); err != nil {
		return c.Status(statusFor(err)).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}

	saved, err := editor().Load(staffID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Saved but failed to reload availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"staff_id": staffID,
		"date":     date.Format(utils.DateLayout),
		"slots":    saved.Slots,
	})
}

// ListAvailability returns all saved days for a staff member in a range.
func ListAvailability(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil || staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff id",
			Error:   "staffId must be a positive integer",
		})
	}
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

	days, err := editor().ListAvailability(uint(staffID), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to list availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(days)
}

// GetDayConflicts exposes the booking overlay on its own, for UIs that only
// need the conflict annotations.
func GetDayConflicts(c *fiber.Ctx) error {
	staffID, date, err := parseStaffAndDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid path parameters",
			Error:   err.Error(),
		})
	}
	conflicts, err := editor().Conflicts(staffID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booked slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"booked": conflicts,
		"count":  len(conflicts),
	})
}
