package repos

import (
	"time"

	"gorm.io/gorm"

	"github.com/lotusspa/scheduler/models"
)

// BookingRepo is the read-only adapter onto the appointment subsystem's
// booked slots. It deliberately exposes no write methods.
type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) ForDay(staffID uint, date time.Time) ([]models.BookedSlot, error) {
	var slots []models.BookedSlot
	err := r.db.
		Where("staff_id = ? AND date = ?", staffID, date).
		Order("time asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
