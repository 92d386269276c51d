package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftEvening   ShiftType = "evening"
	ShiftLeave     ShiftType = "leave"
)

// Valid reports whether t is one of the four known shift types.
func (t ShiftType) Valid() bool {
	switch t {
	case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftLeave:
		return true
	}
	return false
}

// SortOrder gives shift types a stable rendering order within a day.
func (t ShiftType) SortOrder() int {
	switch t {
	case ShiftMorning:
		return 0
	case ShiftAfternoon:
		return 1
	case ShiftEvening:
		return 2
	case ShiftLeave:
		return 3
	}
	return 4
}

type ShiftStatus string

const (
	ShiftPending  ShiftStatus = "pending"
	ShiftApproved ShiftStatus = "approved"
	ShiftRejected ShiftStatus = "rejected"
)

// ShiftRequest is a staff-submitted proposal for a work period or leave day.
// One row per (staff, date, shift type); approved/rejected rows are kept as
// an audit trail and never deleted.
type ShiftRequest struct {
	gorm.Model
	StaffID           uint         `json:"staff_id" gorm:"uniqueIndex:idx_staff_date_type"`
	Staff             StaffProfile `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Date              time.Time    `json:"date" gorm:"type:date;uniqueIndex:idx_staff_date_type"`
	ShiftType         ShiftType    `json:"shift_type" gorm:"type:varchar(20);uniqueIndex:idx_staff_date_type"`
	Status            ShiftStatus  `json:"status" gorm:"type:varchar(20)"`
	Notes             string       `json:"notes"`
	RequestedBy       uint         `json:"requested_by"`
	AssignedManagerID *uint        `json:"assigned_manager_id,omitempty"`
}

func (r *ShiftRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = ShiftPending
	}
	return nil
}

// CanTransition checks the approval state machine: the only legal moves are
// pending -> approved and pending -> rejected.
func (r *ShiftRequest) CanTransition(to ShiftStatus) error {
	if r.Status != ShiftPending {
		return fmt.Errorf("no transitions allowed from %s", r.Status)
	}
	if to != ShiftApproved && to != ShiftRejected {
		return fmt.Errorf("invalid transition from pending to %s", to)
	}
	return nil
}
