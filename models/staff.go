package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type StaffRole string

const (
	RoleTechnician   StaffRole = "technician"
	RoleManager      StaffRole = "manager"
	RoleReceptionist StaffRole = "receptionist"
	RoleAdmin        StaffRole = "admin"
)

// CanApprove reports whether the role may approve or reject shift requests.
func (r StaffRole) CanApprove() bool {
	return r == RoleManager || r == RoleAdmin
}

// StringList maps to a PostgreSQL TEXT[] column.
type StringList []string

func (l *StringList) Scan(src interface{}) error {
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
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*l = StringList{}
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), `"`))
	}
	*l = out
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	quoted := make([]string, len(l))
	for i, s := range l {
		quoted[i] = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// StaffProfile mirrors the staff directory record. The directory service owns
// these rows; the scheduler only reads id, role and specialties.
type StaffProfile struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"unique"`
	Role        StaffRole  `json:"role" gorm:"type:varchar(20);not null"`
	Specialties StringList `json:"specialties" gorm:"type:text[]"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
