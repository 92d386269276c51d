package db

import (
	"fmt"
	"log"

	"github.com/lotusspa/scheduler/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.StaffProfile{},
		&models.Service{},
		&models.DailyAvailability{},
		&models.TimeSlotAvailability{},
		&models.ShiftRequest{},
		&models.BookedSlot{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
