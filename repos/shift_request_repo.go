package repos

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lotusspa/scheduler/models"
)

// ShiftRequestRepo stores shift requests in Postgres. Creates and updates
// are serialized per (staff, date) key so the duplicate-type check cannot
// race with a concurrent insert.
type ShiftRequestRepo struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewShiftRequestRepo(db *gorm.DB) *ShiftRequestRepo {
	return &ShiftRequestRepo{db: db, locks: newKeyedMutex()}
}

func (r *ShiftRequestRepo) Create(req *models.ShiftRequest) error {
	unlock := r.locks.lock(staffDateKey(req.StaffID, req.Date))
	defer unlock()
	return r.db.Create(req).Error
}

func (r *ShiftRequestRepo) Update(req *models.ShiftRequest) error {
	unlock := r.locks.lock(staffDateKey(req.StaffID, req.Date))
	defer unlock()
	return r.db.Save(req).Error
}

func (r *ShiftRequestRepo) Delete(id uint) error {
	// hard delete: a withdrawn pending request must free its
	// (staff, date, type) slot under the unique index
	return r.db.Unscoped().Delete(&models.ShiftRequest{}, id).Error
}

func (r *ShiftRequestRepo) GetByID(id uint) (*models.ShiftRequest, error) {
	var req models.ShiftRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ShiftRequestRepo) FindByKey(staffID uint, date time.Time, shiftType models.ShiftType) (*models.ShiftRequest, error) {
	var req models.ShiftRequest
	err := r.db.
		Where("staff_id = ? AND date = ? AND shift_type = ?", staffID, date, shiftType).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ShiftRequestRepo) ListForDay(staffID uint, date time.Time) ([]models.ShiftRequest, error) {
	var reqs []models.ShiftRequest
	err := r.db.
		Where("staff_id = ? AND date = ?", staffID, date).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ShiftRequestRepo) List(staffID uint, from, to time.Time, status models.ShiftStatus) ([]models.ShiftRequest, error) {
	query := r.db.Where("date BETWEEN ? AND ?", from, to)
	if staffID != 0 {
		query = query.Where("staff_id = ?", staffID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reqs []models.ShiftRequest
	if err := query.Order("date asc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}
