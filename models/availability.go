package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// StandardSlotTimes is the fixed roster of slot start times the spa works
// with. Availability can only ever be declared at one of these times.
var StandardSlotTimes = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// IsStandardSlotTime reports whether t ("HH:MM") is on the roster.
func IsStandardSlotTime(t string) bool {
	for _, s := range StandardSlotTimes {
		if s == t {
			return true
		}
	}
	return false
}

// UintList maps to a PostgreSQL INT[] column.
type UintList []uint

func (l *UintList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("UintList.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*l = UintList{}
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(UintList, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return fmt.Errorf("UintList.Scan: invalid element %q: %w", p, err)
		}
		out = append(out, uint(n))
	}
	*l = out
	return nil
}

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// DailyAvailability is one staff member's declared availability for one
// calendar date. Saved wholesale by the editor; a save with no slots deletes
// the row instead.
type DailyAvailability struct {
	gorm.Model
	StaffID uint                   `json:"staff_id" gorm:"uniqueIndex:idx_staff_date"`
	Staff   StaffProfile           `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Date    time.Time              `json:"date" gorm:"type:date;uniqueIndex:idx_staff_date"`
	Slots   []TimeSlotAvailability `json:"slots" gorm:"foreignKey:DailyAvailabilityID"`
}

// TimeSlotAvailability is a single available slot within a day. At most one
// row exists per (staff, date, time). ServiceIDs lists which catalog services
// the staff may perform at that time; only Technician slots carry services.
type TimeSlotAvailability struct {
	gorm.Model
	DailyAvailabilityID uint     `json:"-"`
	Time                string   `json:"time"` // "HH:MM", from StandardSlotTimes
	ServiceIDs          UintList `json:"service_ids" gorm:"type:int[]"`
}
