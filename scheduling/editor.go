package scheduling

import (
	"sort"
	"time"

	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/utils"
)

// Editor is the availability-editing workflow: a scheduler loads a staff
// member's day, toggles slots and per-slot services, then commits the whole
// set back. Booked slots are surfaced as warnings only; the editor never
// touches booking records.
type Editor struct {
	Store    AvailabilityStore
	Bookings BookingReader
	Now      func() time.Time
}

func NewEditor(store AvailabilityStore, bookings BookingReader) *Editor {
	return &Editor{Store: store, Bookings: bookings, Now: time.Now}
}

// EditorState is the in-progress slot set for one staff/date. Operations on
// it are value-semantic: they return a new state and leave the receiver
// untouched, so a caller can always discard an edit.
type EditorState struct {
	Slots []models.TimeSlotAvailability

	// service lists of slots toggled off during this edit, so toggling a
	// slot back on restores its previous services
	remembered map[string]models.UintList
}

func copySlots(slots []models.TimeSlotAvailability) []models.TimeSlotAvailability {
	out := make([]models.TimeSlotAvailability, len(slots))
	for i, s := range slots {
		out[i] = s
		out[i].ServiceIDs = append(models.UintList(nil), s.ServiceIDs...)
	}
	return out
}

func (s EditorState) clone() EditorState {
	c := EditorState{Slots: copySlots(s.Slots)}
	if s.remembered != nil {
		c.remembered = make(map[string]models.UintList, len(s.remembered))
		for t, ids := range s.remembered {
			c.remembered[t] = append(models.UintList(nil), ids...)
		}
	}
	return c
}

// Load returns the persisted state for a staff/date, or an empty state if no
// record exists. Service lists are deep-copied so edits never corrupt the
// store's view.
func (e *Editor) Load(staffID uint, date time.Time) (EditorState, error) {
	slots, err := e.Store.Get(staffID, utils.DateOnly(date))
	if err != nil {
		return EditorState{}, err
	}
	return EditorState{Slots: copySlots(slots)}, nil
}

// Toggle flips availability at the given time. Toggling off remembers the
// slot's service list; toggling back on restores it. The result stays sorted
// by time.
func (s EditorState) Toggle(slotTime string) EditorState {
	next := s.clone()
	for i, slot := range next.Slots {
		if slot.Time == slotTime {
			if next.remembered == nil {
				next.remembered = make(map[string]models.UintList)
			}
			next.remembered[slotTime] = slot.ServiceIDs
			next.Slots = append(next.Slots[:i], next.Slots[i+1:]...)
			return next
		}
	}
	slot := models.TimeSlotAvailability{Time: slotTime, ServiceIDs: models.UintList{}}
	if ids, ok := next.remembered[slotTime]; ok {
		slot.ServiceIDs = append(models.UintList(nil), ids...)
	}
	next.Slots = append(next.Slots, slot)
	sort.Slice(next.Slots, func(i, j int) bool {
		return next.Slots[i].Time < next.Slots[j].Time
	})
	return next
}

// SetService adds or removes a service on the slot at the given time. A
// missing slot is a no-op.
func (s EditorState) SetService(slotTime string, serviceID uint, included bool) EditorState {
	next := s.clone()
	for i, slot := range next.Slots {
		if slot.Time != slotTime {
			continue
		}
		ids := slot.ServiceIDs[:0:0]
		found := false
		for _, id := range slot.ServiceIDs {
			if id == serviceID {
				found = true
				if !included {
					continue
				}
			}
			ids = append(ids, id)
		}
		if included && !found {
			ids = append(ids, serviceID)
		}
		next.Slots[i].ServiceIDs = ids
		break
	}
	return next
}

// HasSlot reports whether the state currently marks slotTime available.
func (s EditorState) HasSlot(slotTime string) bool {
	for _, slot := range s.Slots {
		if slot.Time == slotTime {
			return true
		}
	}
	return false
}

// Commit validates and persists the final state for the staff/date,
// replacing whatever was stored before. For Technicians, slots with no
// assigned service are dropped first: a Technician slot that can serve
// nothing is not meaningfully available. A final state with no slots deletes
// the day's record.
func (e *Editor) Commit(staff *models.StaffProfile, date time.Time, state EditorState) error {
	if staff == nil {
		return &ValidationError{Field: "staff", Reason: "is required"}
	}
	day := utils.DateOnly(date)
	if day.Before(utils.DateOnly(e.Now())) {
		return &PastDateError{Date: day}
	}

	seen := make(map[string]bool, len(state.Slots))
	final := make([]models.TimeSlotAvailability, 0, len(state.Slots))
	for _, slot := range state.Slots {
		if !models.IsStandardSlotTime(slot.Time) {
			return &ValidationError{Field: "time", Reason: "not a standard slot time: " + slot.Time}
		}
		if seen[slot.Time] {
			return &ValidationError{Field: "time", Reason: "duplicate slot " + slot.Time}
		}
		seen[slot.Time] = true
		if staff.Role == models.RoleTechnician && len(slot.ServiceIDs) == 0 {
			continue
		}
		final = append(final, slot)
	}
	sort.Slice(final, func(i, j int) bool { return final[i].Time < final[j].Time })

	return e.Store.Replace(staff.ID, day, final)
}

// Conflicts returns the staff member's active bookings on the date, so the
// editor can flag slots that already hold an appointment.
func (e *Editor) Conflicts(staffID uint, date time.Time) ([]models.BookedSlot, error) {
	return ConflictsForDay(e.Bookings, staffID, date)
}

// ListAvailability returns all persisted records for a staff member within
// the date range.
func (e *Editor) ListAvailability(staffID uint, from, to time.Time) ([]models.DailyAvailability, error) {
	return e.Store.List(staffID, utils.DateOnly(from), utils.DateOnly(to))
}
