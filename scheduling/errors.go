package scheduling

import (
	"fmt"
	"time"

	"github.com/lotusspa/scheduler/models"
)

// Every validation failure in this package is returned as one of the typed
// errors below so the HTTP layer can map it to a specific status and message.
// None of them are fatal; the caller corrects the input and retries.

// PastDateError rejects any mutation aimed at a date before today.
type PastDateError struct {
	Date time.Time
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("date %s is in the past", e.Date.Format("2006-01-02"))
}

// DuplicateShiftError rejects a second request for the same
// (staff, date, shift type) triple. ShiftType names the conflicting request
// so the caller can surface it.
type DuplicateShiftError struct {
	ShiftType models.ShiftType
	Date      time.Time
}

func (e *DuplicateShiftError) Error() string {
	return fmt.Sprintf("a %s shift request already exists for %s",
		e.ShiftType, e.Date.Format("2006-01-02"))
}

// ImmutableRequestError rejects edit/withdraw attempts on a request that has
// left the pending state or whose date has passed.
type ImmutableRequestError struct {
	RequestID uint
	Status    models.ShiftStatus
}

func (e *ImmutableRequestError) Error() string {
	return fmt.Sprintf("shift request %d is %s and can no longer be changed",
		e.RequestID, e.Status)
}

// InvalidTransitionError rejects approve/reject on a non-pending request.
type InvalidTransitionError struct {
	From models.ShiftStatus
	To   models.ShiftStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// ValidationError rejects malformed input, e.g. a missing shift type or a
// slot time outside the standard roster.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
