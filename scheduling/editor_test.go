package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/lotusspa/scheduler/models"
)

var testNow = time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)

func testDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestEditor(bookings *fakeBookingReader) (*Editor, *fakeAvailabilityStore) {
	store := newFakeAvailabilityStore()
	if bookings == nil {
		bookings = &fakeBookingReader{}
	}
	e := NewEditor(store, bookings)
	e.Now = func() time.Time { return testNow }
	return e, store
}

func technician(id uint, specialties ...string) *models.StaffProfile {
	return &models.StaffProfile{ID: id, Name: "Mai", Role: models.RoleTechnician, Specialties: specialties}
}

func TestLoadEmptyDay(t *testing.T) {
	e, _ := newTestEditor(nil)
	state, err := e.Load(1, testDate("2025-06-10"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.Slots) != 0 {
		t.Fatalf("expected empty state, got %d slots", len(state.Slots))
	}
}

func TestToggleAndCommitRoundTrip(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state, _ := e.Load(mai.ID, date)
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)

	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	loaded, err := e.Load(mai.ID, date)
	if err != nil {
		t.Fatalf("Load after commit: %v", err)
	}
	if len(loaded.Slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(loaded.Slots))
	}
	if loaded.Slots[0].Time != "09:00" {
		t.Errorf("expected time 09:00, got %s", loaded.Slots[0].Time)
	}
	if len(loaded.Slots[0].ServiceIDs) != 1 || loaded.Slots[0].ServiceIDs[0] != 42 {
		t.Errorf("expected services [42], got %v", loaded.Slots[0].ServiceIDs)
	}
}

func TestToggleOffRemembersServices(t *testing.T) {
	state := EditorState{}
	state = state.Toggle("10:00")
	state = state.SetService("10:00", 7, true)
	state = state.Toggle("10:00") // off
	if state.HasSlot("10:00") {
		t.Fatal("slot should be off")
	}
	state = state.Toggle("10:00") // back on
	if got := state.Slots[0].ServiceIDs; len(got) != 1 || got[0] != 7 {
		t.Errorf("expected restored services [7], got %v", got)
	}
}

func TestToggleKeepsSlotsSorted(t *testing.T) {
	state := EditorState{}
	for _, tm := range []string{"14:00", "09:00", "11:00"} {
		state = state.Toggle(tm)
	}
	want := []string{"09:00", "11:00", "14:00"}
	for i, tm := range want {
		if state.Slots[i].Time != tm {
			t.Fatalf("slot %d: expected %s, got %s", i, tm, state.Slots[i].Time)
		}
	}
}

func TestSetServiceOnMissingSlotIsNoop(t *testing.T) {
	state := EditorState{}
	state = state.Toggle("09:00")
	next := state.SetService("13:00", 5, true)
	if len(next.Slots) != 1 || len(next.Slots[0].ServiceIDs) != 0 {
		t.Errorf("expected unchanged state, got %+v", next.Slots)
	}
}

func TestEditDoesNotCorruptLoadedState(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state, _ := e.Load(mai.ID, date)
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	loaded, _ := e.Load(mai.ID, date)
	loaded.Slots[0].ServiceIDs[0] = 999

	again, _ := e.Load(mai.ID, date)
	if again.Slots[0].ServiceIDs[0] != 42 {
		t.Error("mutating a loaded state leaked into the store")
	}
}

func TestCommitDropsEmptyTechnicianSlots(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state := EditorState{}
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)
	state = state.Toggle("11:00") // no services assigned

	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	loaded, _ := e.Load(mai.ID, date)
	if len(loaded.Slots) != 1 || loaded.Slots[0].Time != "09:00" {
		t.Fatalf("expected only the 09:00 slot to survive, got %+v", loaded.Slots)
	}
}

func TestCommitKeepsEmptyNonTechnicianSlots(t *testing.T) {
	e, _ := newTestEditor(nil)
	reception := &models.StaffProfile{ID: 2, Role: models.RoleReceptionist}
	date := testDate("2025-06-10")

	state := EditorState{}
	state = state.Toggle("09:00")
	if err := e.Commit(reception, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	loaded, _ := e.Load(reception.ID, date)
	if len(loaded.Slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(loaded.Slots))
	}
}

func TestCommitIsIdempotent(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state := EditorState{}
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)

	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("first Commit: %v", err)
	}
	first, _ := e.Load(mai.ID, date)
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("second Commit: %v", err)
	}
	second, _ := e.Load(mai.ID, date)

	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("second commit changed the slot count: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i].Time != second.Slots[i].Time {
			t.Errorf("slot %d changed: %s vs %s", i, first.Slots[i].Time, second.Slots[i].Time)
		}
	}
}

func TestCommitPastDateFails(t *testing.T) {
	e, store := newTestEditor(nil)
	mai := technician(1, "Massage")
	yesterday := testDate("2025-06-08")

	state := EditorState{}
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)

	err := e.Commit(mai, yesterday, state)
	var pastErr *PastDateError
	if !errors.As(err, &pastErr) {
		t.Fatalf("expected PastDateError, got %v", err)
	}
	if len(store.days) != 0 {
		t.Error("past-date commit must not write anything")
	}
}

func TestCommitTodaySucceeds(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")

	state := EditorState{}
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)
	if err := e.Commit(mai, testDate("2025-06-09"), state); err != nil {
		t.Fatalf("committing for today should work: %v", err)
	}
}

func TestCommitEmptyStateDeletesRecord(t *testing.T) {
	e, store := newTestEditor(nil)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state := EditorState{}
	state = state.Toggle("09:00")
	state = state.SetService("09:00", 42, true)
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	state = state.Toggle("09:00") // remove the only slot
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("empty Commit: %v", err)
	}
	if len(store.days) != 0 {
		t.Error("an empty final state should delete the day's record")
	}
}

func TestCommitRejectsNonStandardSlotTime(t *testing.T) {
	e, _ := newTestEditor(nil)
	mai := technician(1, "Massage")
	state := EditorState{Slots: []models.TimeSlotAvailability{
		{Time: "09:30", ServiceIDs: models.UintList{1}},
	}}
	err := e.Commit(mai, testDate("2025-06-10"), state)
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRemovingBookedSlotKeepsBooking(t *testing.T) {
	booked := &fakeBookingReader{slots: []models.BookedSlot{
		{StaffID: 1, Date: testDate("2025-06-10"), Time: "14:00", ServiceName: "Hot Stone", Status: models.BookingScheduled},
	}}
	e, _ := newTestEditor(booked)
	mai := technician(1, "Massage")
	date := testDate("2025-06-10")

	state := EditorState{}
	state = state.Toggle("14:00")
	state = state.SetService("14:00", 3, true)
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// scheduler removes the booked slot from availability; policy is warn,
	// not block, and the booking itself survives
	state = state.Toggle("14:00")
	if err := e.Commit(mai, date, state); err != nil {
		t.Fatalf("Commit removing booked slot: %v", err)
	}

	conflicts, err := ConflictsForDay(booked, mai.ID, date)
	if err != nil {
		t.Fatalf("ConflictsForDay: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].Time != "14:00" {
		t.Fatalf("booked slot should still be queryable, got %+v", conflicts)
	}
}

func TestConflictsForDayIgnoresInactiveBookings(t *testing.T) {
	booked := &fakeBookingReader{slots: []models.BookedSlot{
		{StaffID: 1, Date: testDate("2025-06-10"), Time: "09:00", Status: models.BookingScheduled},
		{StaffID: 1, Date: testDate("2025-06-10"), Time: "10:00", Status: models.BookingCancelled},
		{StaffID: 1, Date: testDate("2025-06-10"), Time: "11:00", Status: models.BookingCompleted},
	}}
	conflicts, err := ConflictsForDay(booked, 1, testDate("2025-06-10"))
	if err != nil {
		t.Fatalf("ConflictsForDay: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].Time != "09:00" {
		t.Fatalf("only the scheduled booking should conflict, got %+v", conflicts)
	}
}
