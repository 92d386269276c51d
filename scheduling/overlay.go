package scheduling

import (
	"time"

	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/utils"
)

// ConflictsForDay returns the staff member's active bookings on a date.
// Completed and cancelled bookings no longer occupy a slot, so only
// scheduled ones count as conflicts. Read-only: callers use the result to
// warn, never to block or to edit the bookings themselves.
func ConflictsForDay(bookings BookingReader, staffID uint, date time.Time) ([]models.BookedSlot, error) {
	all, err := bookings.ForDay(staffID, utils.DateOnly(date))
	if err != nil {
		return nil, err
	}
	conflicts := make([]models.BookedSlot, 0, len(all))
	for _, b := range all {
		if b.Status == models.BookingScheduled {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts, nil
}
