package scheduling

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/utils"
)

// ── in-memory fakes backing the core tests ──

type fakeAvailabilityStore struct {
	days map[string][]models.TimeSlotAvailability
}

func newFakeAvailabilityStore() *fakeAvailabilityStore {
	return &fakeAvailabilityStore{days: make(map[string][]models.TimeSlotAvailability)}
}

func availKey(staffID uint, date time.Time) string {
	return fmt.Sprintf("%d/%s", staffID, utils.DateOnly(date).Format("2006-01-02"))
}

func (f *fakeAvailabilityStore) Get(staffID uint, date time.Time) ([]models.TimeSlotAvailability, error) {
	slots, ok := f.days[availKey(staffID, date)]
	if !ok {
		return []models.TimeSlotAvailability{}, nil
	}
	out := make([]models.TimeSlotAvailability, len(slots))
	copy(out, slots)
	return out, nil
}

func (f *fakeAvailabilityStore) Replace(staffID uint, date time.Time, slots []models.TimeSlotAvailability) error {
	key := availKey(staffID, date)
	if len(slots) == 0 {
		delete(f.days, key)
		return nil
	}
	stored := make([]models.TimeSlotAvailability, len(slots))
	copy(stored, slots)
	f.days[key] = stored
	return nil
}

func (f *fakeAvailabilityStore) List(staffID uint, from, to time.Time) ([]models.DailyAvailability, error) {
	var out []models.DailyAvailability
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if slots, ok := f.days[availKey(staffID, d)]; ok {
			out = append(out, models.DailyAvailability{StaffID: staffID, Date: d, Slots: slots})
		}
	}
	return out, nil
}

type fakeShiftStore struct {
	nextID   uint
	requests map[uint]models.ShiftRequest
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{nextID: 1, requests: make(map[uint]models.ShiftRequest)}
}

func (f *fakeShiftStore) Create(req *models.ShiftRequest) error {
	req.ID = f.nextID
	f.nextID++
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeShiftStore) Update(req *models.ShiftRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeShiftStore) Delete(id uint) error {
	delete(f.requests, id)
	return nil
}

func (f *fakeShiftStore) GetByID(id uint) (*models.ShiftRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (f *fakeShiftStore) FindByKey(staffID uint, date time.Time, shiftType models.ShiftType) (*models.ShiftRequest, error) {
	for _, req := range f.requests {
		if req.StaffID == staffID && req.Date.Equal(date) && req.ShiftType == shiftType {
			r := req
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeShiftStore) ListForDay(staffID uint, date time.Time) ([]models.ShiftRequest, error) {
	var out []models.ShiftRequest
	for _, req := range f.requests {
		if req.StaffID == staffID && req.Date.Equal(date) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeShiftStore) List(staffID uint, from, to time.Time, status models.ShiftStatus) ([]models.ShiftRequest, error) {
	var out []models.ShiftRequest
	for _, req := range f.requests {
		if staffID != 0 && req.StaffID != staffID {
			continue
		}
		if req.Date.Before(from) || req.Date.After(to) {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

type fakeBookingReader struct {
	slots []models.BookedSlot
}

func (f *fakeBookingReader) ForDay(staffID uint, date time.Time) ([]models.BookedSlot, error) {
	var out []models.BookedSlot
	for _, b := range f.slots {
		if b.StaffID == staffID && utils.DateOnly(b.Date).Equal(utils.DateOnly(date)) {
			out = append(out, b)
		}
	}
	return out, nil
}
