package database

import (
	"log"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Guest{},
		&models.Room{},
		&models.Booking{},
		&models.User{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index covering the open bookings the availability check scans.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_open
		ON bookings (room_id, check_in, check_out)
		WHERE state IN ('confirmed', 'in_progress')
	`)

	return db
}
