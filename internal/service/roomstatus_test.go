package service

import (
	"testing"
	"time"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestActiveBooking_Boundaries(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10), State: models.StateConfirmed},
	}

	// Check-in day counts.
	assert.NotNil(t, ActiveBooking(bookings, date(2026, 9, 5)))
	// Mid-stay counts.
	assert.NotNil(t, ActiveBooking(bookings, date(2026, 9, 7)))
	// Checkout day does not: the range is half-open.
	assert.Nil(t, ActiveBooking(bookings, date(2026, 9, 10)))
	// Neither does the day before check-in.
	assert.Nil(t, ActiveBooking(bookings, date(2026, 9, 4)))
}

func TestActiveBooking_StripsTimeOfDay(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 6), State: models.StateInProgress},
	}

	evening := time.Date(2026, 9, 5, 22, 30, 0, 0, time.UTC)
	assert.NotNil(t, ActiveBooking(bookings, evening))
}

func TestActiveBooking_IgnoresClosedStates(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10), State: models.StateCancelled},
		{ID: 2, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10), State: models.StateCompleted},
	}

	assert.Nil(t, ActiveBooking(bookings, date(2026, 9, 7)))
}

func TestDeriveStatus_OccupiedWhenActive(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10), State: models.StateInProgress},
	}

	got := DeriveStatus(models.RoomAvailable, bookings, date(2026, 9, 7))
	assert.Equal(t, models.RoomOccupied, got)
}

func TestDeriveStatus_AvailableWhenIdle(t *testing.T) {
	got := DeriveStatus(models.RoomOccupied, nil, date(2026, 9, 7))
	assert.Equal(t, models.RoomAvailable, got)
}

func TestDeriveStatus_EchoesManualStates(t *testing.T) {
	// Even with an active booking today, maintenance and cleaning win.
	bookings := []models.Booking{
		{ID: 1, CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10), State: models.StateInProgress},
	}

	assert.Equal(t, models.RoomMaintenance, DeriveStatus(models.RoomMaintenance, bookings, date(2026, 9, 7)))
	assert.Equal(t, models.RoomCleaning, DeriveStatus(models.RoomCleaning, bookings, date(2026, 9, 7)))
	assert.Equal(t, models.RoomMaintenance, DeriveStatus(models.RoomMaintenance, nil, date(2026, 9, 7)))
}
