package config

import (
	"fmt"
	"log"

	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func dbDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		GetEnvDefault("DB_HOST", "localhost"),
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_NAME"),
		GetEnvDefault("DB_PORT", "5432"),
		GetEnvDefault("DB_SSLMODE", "disable"),
	)
}

// ConnectDB opens the Postgres connection and migrates the schema
func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(dbDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	// Partial unique index backing the at-most-one-active-booking invariant;
	// the repository's locked check-and-insert is the primary guard.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_one_active
		ON bookings (room_id, student_id)
		WHERE status IN ('pending', 'confirmed')`).Error
	if err != nil {
		log.Fatalf("Failed to create active-booking index: %v", err)
	}

	fmt.Println("Successfully connected to db")
}
