package scheduling

import (
	"time"

	"github.com/lotusspa/scheduler/models"
)

// AvailabilityStore persists per-staff, per-date slot sets. Replace is
// all-or-nothing for its (staffID, date) key; implementations must serialize
// concurrent writes to the same key.
type AvailabilityStore interface {
	// Get returns the persisted slots for the key, or an empty slice if the
	// day has no record.
	Get(staffID uint, date time.Time) ([]models.TimeSlotAvailability, error)
	// Replace swaps the full slot set for the key. An empty set deletes the
	// day's record instead of persisting an empty one.
	Replace(staffID uint, date time.Time, slots []models.TimeSlotAvailability) error
	// List returns all records for the staff member within [from, to].
	List(staffID uint, from, to time.Time) ([]models.DailyAvailability, error)
}

// ShiftRequestStore persists shift requests. Writes to the same
// (staffID, date) key must be serialized.
type ShiftRequestStore interface {
	Create(req *models.ShiftRequest) error
	Update(req *models.ShiftRequest) error
	Delete(id uint) error
	GetByID(id uint) (*models.ShiftRequest, error)
	// FindByKey returns the request occupying (staffID, date, shiftType), or
	// nil if the triple is free.
	FindByKey(staffID uint, date time.Time, shiftType models.ShiftType) (*models.ShiftRequest, error)
	// ListForDay returns all of a staff member's requests on a date.
	ListForDay(staffID uint, date time.Time) ([]models.ShiftRequest, error)
	// List queries by date range; staffID 0 means all staff, status "" means
	// any status.
	List(staffID uint, from, to time.Time, status models.ShiftStatus) ([]models.ShiftRequest, error)
}

// BookingReader is the read-only view onto the appointment subsystem's
// booked slots. Nothing in this package writes through it.
type BookingReader interface {
	ForDay(staffID uint, date time.Time) ([]models.BookedSlot, error)
}
