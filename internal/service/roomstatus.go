package service

import (
	"time"

	"github.com/hotelsuite/hotel-management-api/internal/models"
)

// ActiveBooking returns the booking occupying the room as of the reference
// date: confirmed or in progress, with checkIn <= asOf < checkOut. Returns
// nil when none matches. This is the single occupancy predicate shared by
// the reconciler, booking creation and booking cancellation.
func ActiveBooking(bookings []models.Booking, asOf time.Time) *models.Booking {
	asOf = models.Midnight(asOf)
	for i := range bookings {
		b := &bookings[i]
		if !b.State.Open() {
			continue
		}
		if !b.CheckIn.After(asOf) && b.CheckOut.After(asOf) {
			return b
		}
	}
	return nil
}

// DeriveStatus computes what a room's status should be as of the reference
// date. Maintenance and cleaning are echoed back unchanged: those states are
// operator-managed and derivation never overrides them. Pure; applying the
// result is the reconciler's job.
func DeriveStatus(stored models.RoomStatus, bookings []models.Booking, asOf time.Time) models.RoomStatus {
	if stored.ManuallyManaged() {
		return stored
	}
	if ActiveBooking(bookings, asOf) != nil {
		return models.RoomOccupied
	}
	return models.RoomAvailable
}
