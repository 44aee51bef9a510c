package service

import (
	"context"
	"errors"
	"time"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/repository"
	"gorm.io/gorm"
)

// Overlaps reports whether two half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect. Checkout day is excluded, so a guest leaving on
// day N and another arriving on day N do not conflict.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// HasConflict reports whether the candidate range collides with any open
// booking in the list, skipping excludeBookingID when set (re-checking an
// existing booking against its own unchanged slot must not self-conflict).
func HasConflict(bookings []models.Booking, checkIn, checkOut time.Time, excludeBookingID *uint) bool {
	for i := range bookings {
		b := &bookings[i]
		if !b.State.Open() {
			continue
		}
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return true
		}
	}
	return false
}

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error)
}

type availabilityChecker struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository

	// checkRoomStatus additionally treats rooms in maintenance or cleaning
	// as never available. Off by default; see config.
	checkRoomStatus bool
}

func NewAvailabilityChecker(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository, checkRoomStatus bool) AvailabilityChecker {
	return &availabilityChecker{
		roomRepo:        roomRepo,
		bookingRepo:     bookingRepo,
		checkRoomStatus: checkRoomStatus,
	}
}

func (c *availabilityChecker) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
	room, err := c.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A missing room is simply not available.
			return false, nil
		}
		return false, err
	}

	if c.checkRoomStatus && room.Status.ManuallyManaged() {
		return false, nil
	}

	open, err := c.bookingRepo.FindOpenByRoomID(ctx, c.bookingRepo.GetDB(), roomID)
	if err != nil {
		return false, err
	}

	checkIn = models.Midnight(checkIn)
	checkOut = models.Midnight(checkOut)
	return !HasConflict(open, checkIn, checkOut, excludeBookingID), nil
}
