package repos

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lotusspa/scheduler/models"
)

// AvailabilityRepo stores DailyAvailability records in Postgres. Replace is
// transactional and serialized per (staff, date) key, so a commit either
// lands whole or not at all.
type AvailabilityRepo struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db, locks: newKeyedMutex()}
}

func (r *AvailabilityRepo) Get(staffID uint, date time.Time) ([]models.TimeSlotAvailability, error) {
	var day models.DailyAvailability
	err := r.db.Preload("Slots").
		Where("staff_id = ? AND date = ?", staffID, date).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.TimeSlotAvailability{}, nil
	}
	if err != nil {
		return nil, err
	}
	return day.Slots, nil
}

func (r *AvailabilityRepo) Replace(staffID uint, date time.Time, slots []models.TimeSlotAvailability) error {
	unlock := r.locks.lock(staffDateKey(staffID, date))
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.DailyAvailability
		err := tx.Where("staff_id = ? AND date = ?", staffID, date).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing.ID != 0 {
			if err := tx.Unscoped().Where("daily_availability_id = ?", existing.ID).
				Delete(&models.TimeSlotAvailability{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
		}
		if len(slots) == 0 {
			// an empty day is deleted, not stored
			return nil
		}
		day := models.DailyAvailability{StaffID: staffID, Date: date}
		for _, s := range slots {
			day.Slots = append(day.Slots, models.TimeSlotAvailability{
				Time:       s.Time,
				ServiceIDs: s.ServiceIDs,
			})
		}
		return tx.Create(&day).Error
	})
}

func (r *AvailabilityRepo) List(staffID uint, from, to time.Time) ([]models.DailyAvailability, error) {
	var days []models.DailyAvailability
	err := r.db.Preload("Slots").
		Where("staff_id = ? AND date BETWEEN ? AND ?", staffID, from, to).
		Order("date asc").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}
