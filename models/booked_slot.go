package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookedSlot is a booked appointment slot owned by the appointment subsystem.
// The scheduler reads these to flag conflicts; it must never create, update
// or delete them.
type BookedSlot struct {
	gorm.Model
	StaffID     uint          `json:"staff_id" gorm:"index:idx_booked_staff_date"`
	Date        time.Time     `json:"date" gorm:"type:date;index:idx_booked_staff_date"`
	Time        string        `json:"time"` // "HH:MM"
	ServiceName string        `json:"service_name"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20)"`
}
