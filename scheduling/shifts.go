package scheduling

import (
	"sort"
	"time"

	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/utils"
)

// Engine runs the shift-request approval state machine:
//
//	pending -> approved | rejected
//
// Staff create, edit and withdraw requests only while pending and not in the
// past; approved and rejected requests are kept untouched as an audit trail.
type Engine struct {
	Store    ShiftRequestStore
	Bookings BookingReader
	Now      func() time.Time
}

func NewEngine(store ShiftRequestStore, bookings BookingReader) *Engine {
	return &Engine{Store: store, Bookings: bookings, Now: time.Now}
}

type SubmitInput struct {
	StaffID     uint             `json:"staff_id"`
	Date        time.Time        `json:"date"`
	ShiftType   models.ShiftType `json:"shift_type"`
	Notes       string           `json:"notes"`
	RequestedBy uint             `json:"requested_by"`
}

// SubmitResult carries the created request plus any booked appointments on
// the same day. Conflicts are informational: a leave request over existing
// bookings goes through, the caller just surfaces the warning.
type SubmitResult struct {
	Request          *models.ShiftRequest `json:"request"`
	BookingConflicts []models.BookedSlot  `json:"booking_conflicts,omitempty"`
}

func (g *Engine) today() time.Time {
	return utils.DateOnly(g.Now())
}

// Submit creates a pending request after validating the shift type, the
// date-not-in-past rule and the one-request-per-type-per-day rule.
func (g *Engine) Submit(in SubmitInput) (*SubmitResult, error) {
	if in.ShiftType == "" {
		return nil, &ValidationError{Field: "shift_type", Reason: "is required"}
	}
	if !in.ShiftType.Valid() {
		return nil, &ValidationError{Field: "shift_type", Reason: "unknown shift type: " + string(in.ShiftType)}
	}
	if in.StaffID == 0 {
		return nil, &ValidationError{Field: "staff_id", Reason: "is required"}
	}
	day := utils.DateOnly(in.Date)
	if day.Before(g.today()) {
		return nil, &PastDateError{Date: day}
	}
	existing, err := g.Store.FindByKey(in.StaffID, day, in.ShiftType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateShiftError{ShiftType: existing.ShiftType, Date: day}
	}

	req := &models.ShiftRequest{
		StaffID:     in.StaffID,
		Date:        day,
		ShiftType:   in.ShiftType,
		Status:      models.ShiftPending,
		Notes:       in.Notes,
		RequestedBy: in.RequestedBy,
	}
	if err := g.Store.Create(req); err != nil {
		return nil, err
	}

	result := &SubmitResult{Request: req}
	if g.Bookings != nil {
		// booked appointments on the same day are a warning, never a block
		conflicts, err := ConflictsForDay(g.Bookings, in.StaffID, day)
		if err == nil {
			result.BookingConflicts = conflicts
		}
	}
	return result, nil
}

type UpdatePatch struct {
	ShiftType *models.ShiftType `json:"shift_type,omitempty"`
	Date      *time.Time        `json:"date,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

// Update edits a request while it is still pending and not in the past. The
// duplicate rule is re-checked against the patched values, excluding the
// request itself.
func (g *Engine) Update(id uint, patch UpdatePatch) (*models.ShiftRequest, error) {
	req, err := g.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.ShiftPending || utils.DateOnly(req.Date).Before(g.today()) {
		return nil, &ImmutableRequestError{RequestID: req.ID, Status: req.Status}
	}

	newDate := utils.DateOnly(req.Date)
	if patch.Date != nil {
		newDate = utils.DateOnly(*patch.Date)
		if newDate.Before(g.today()) {
			return nil, &PastDateError{Date: newDate}
		}
	}
	newType := req.ShiftType
	if patch.ShiftType != nil {
		if !patch.ShiftType.Valid() {
			return nil, &ValidationError{Field: "shift_type", Reason: "unknown shift type: " + string(*patch.ShiftType)}
		}
		newType = *patch.ShiftType
	}

	if newType != req.ShiftType || !newDate.Equal(utils.DateOnly(req.Date)) {
		existing, err := g.Store.FindByKey(req.StaffID, newDate, newType)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != req.ID {
			return nil, &DuplicateShiftError{ShiftType: existing.ShiftType, Date: newDate}
		}
	}

	req.Date = newDate
	req.ShiftType = newType
	if patch.Notes != nil {
		req.Notes = *patch.Notes
	}
	if err := g.Store.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Withdraw deletes a request while it is still pending and not in the past.
// Terminal requests stay on record.
func (g *Engine) Withdraw(id uint) error {
	req, err := g.Store.GetByID(id)
	if err != nil {
		return err
	}
	if req.Status != models.ShiftPending || utils.DateOnly(req.Date).Before(g.today()) {
		return &ImmutableRequestError{RequestID: req.ID, Status: req.Status}
	}
	return g.Store.Delete(req.ID)
}

// Approve transitions a pending request to approved, stamping the deciding
// manager.
func (g *Engine) Approve(id uint, managerID uint) (*models.ShiftRequest, error) {
	return g.decide(id, managerID, models.ShiftApproved)
}

// Reject transitions a pending request to rejected, stamping the deciding
// manager.
func (g *Engine) Reject(id uint, managerID uint) (*models.ShiftRequest, error) {
	return g.decide(id, managerID, models.ShiftRejected)
}

func (g *Engine) decide(id uint, managerID uint, to models.ShiftStatus) (*models.ShiftRequest, error) {
	if managerID == 0 {
		return nil, &ValidationError{Field: "manager_id", Reason: "is required"}
	}
	req, err := g.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := req.CanTransition(to); err != nil {
		return nil, &InvalidTransitionError{From: req.Status, To: to}
	}
	req.Status = to
	req.AssignedManagerID = &managerID
	if err := g.Store.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListForDay returns a staff member's requests for a date, sorted by shift
// type for stable rendering.
func (g *Engine) ListForDay(staffID uint, date time.Time) ([]models.ShiftRequest, error) {
	reqs, err := g.Store.ListForDay(staffID, utils.DateOnly(date))
	if err != nil {
		return nil, err
	}
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].ShiftType.SortOrder() < reqs[j].ShiftType.SortOrder()
	})
	return reqs, nil
}

// ListRequests queries requests by date range. staffID 0 means all staff,
// status "" means any status.
func (g *Engine) ListRequests(staffID uint, from, to time.Time, status models.ShiftStatus) ([]models.ShiftRequest, error) {
	if status != "" && status != models.ShiftPending && status != models.ShiftApproved && status != models.ShiftRejected {
		return nil, &ValidationError{Field: "status", Reason: "unknown status: " + string(status)}
	}
	return g.Store.List(staffID, utils.DateOnly(from), utils.DateOnly(to), status)
}

// DaySummary is one cell of the month calendar: a date and the requests on
// it, sorted by shift type.
type DaySummary struct {
	Date     time.Time             `json:"date"`
	Requests []models.ShiftRequest `json:"requests"`
}

// MonthSummary builds the month-grid read view over the staff member's
// requests: one entry per day that has at least one request.
func (g *Engine) MonthSummary(staffID uint, year int, month time.Month) ([]DaySummary, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	reqs, err := g.Store.List(staffID, first, last, "")
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.ShiftRequest)
	for _, r := range reqs {
		key := utils.DateOnly(r.Date).Format("2006-01-02")
		byDay[key] = append(byDay[key], r)
	}

	summaries := make([]DaySummary, 0, len(byDay))
	for key, dayReqs := range byDay {
		date, _ := time.Parse("2006-01-02", key)
		sort.Slice(dayReqs, func(i, j int) bool {
			return dayReqs[i].ShiftType.SortOrder() < dayReqs[j].ShiftType.SortOrder()
		})
		summaries = append(summaries, DaySummary{Date: date, Requests: dayReqs})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})
	return summaries, nil
}
