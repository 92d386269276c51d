package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"` // e.g. "Massage", "Facial", "Nails"
	Duration    time.Duration `json:"duration"`
	Cost        float64       `json:"cost"`
}
