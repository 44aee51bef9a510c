package repository

import (
	"context"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"gorm.io/gorm"
)

// SweepStore is the narrow persistence surface the reconciler runs against:
// one bulk read, one transactional write per tick.
type SweepStore struct {
	db *gorm.DB
}

func NewSweepStore(db *gorm.DB) *SweepStore {
	return &SweepStore{db: db}
}

func (s *SweepStore) RoomsWithBookings(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).
		Preload("Bookings").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Save persists the status and state flips of one sweep tick in a single
// transaction, so a half-applied tick never becomes visible.
func (s *SweepStore) Save(ctx context.Context, rooms []*models.Room, bookings []*models.Booking) error {
	if len(rooms) == 0 && len(bookings) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, room := range rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", room.Status).Error; err != nil {
				return err
			}
		}
		for _, booking := range bookings {
			if err := tx.Model(&models.Booking{}).
				Where("id = ?", booking.ID).
				Update("state", booking.State).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
