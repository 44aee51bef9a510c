// Package reconciler keeps room statuses and booking states in step with the
// calendar: rooms flip between available and occupied as bookings cross
// "today", confirmed stays are promoted to in progress, and finished stays are
// completed. Runs as a single background loop on a fixed interval.
package reconciler

import (
	"context"
	"log"
	"time"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/service"
	"github.com/hotelsuite/hotel-management-api/pkg/rabbitmq"
)

// Store is the persistence surface one tick needs: a bulk read of every room
// with its bookings and one atomic write of whatever changed.
type Store interface {
	RoomsWithBookings(ctx context.Context) ([]models.Room, error)
	Save(ctx context.Context, rooms []*models.Room, bookings []*models.Booking) error
}

type Reconciler struct {
	store     Store
	interval  time.Duration
	publisher *rabbitmq.Publisher

	// now is injected so tests can pin "today"; Start is the only caller
	// that wires the real clock.
	now func() time.Time
}

func New(store Store, interval time.Duration, publisher *rabbitmq.Publisher, now func() time.Time) *Reconciler {
	if now == nil {
		now = time.Now
	}
	return &Reconciler{
		store:     store,
		interval:  interval,
		publisher: publisher,
		now:       now,
	}
}

// Start runs the sweep loop until ctx is cancelled. Ticks run strictly
// sequentially: the next wait only begins after the previous run finishes,
// so overlapping sweeps cannot occur. A failed tick is logged and the next
// scheduled run is the retry.
func (r *Reconciler) Start(ctx context.Context) {
	go func() {
		log.Printf("[Reconciler] started, interval=%s", r.interval)
		for {
			if err := r.ReconcileOnce(ctx, r.now()); err != nil {
				log.Printf("[Reconciler] sweep failed: %v", err)
			}

			select {
			case <-ctx.Done():
				log.Println("[Reconciler] stopped")
				return
			case <-time.After(r.interval):
			}
		}
	}()
}

// ReconcileOnce performs a single sweep as of the given reference date:
// load all rooms with bookings, compute the transitions in memory, persist
// everything that changed in one save.
func (r *Reconciler) ReconcileOnce(ctx context.Context, asOf time.Time) error {
	today := models.Midnight(asOf)

	rooms, err := r.store.RoomsWithBookings(ctx)
	if err != nil {
		return err
	}

	var changedRooms []*models.Room
	var changedBookings []*models.Booking

	for i := range rooms {
		room := &rooms[i]

		// Maintenance and cleaning are operator-managed; the sweep leaves
		// those rooms and their bookings alone.
		if room.Status.ManuallyManaged() {
			continue
		}

		if active := service.ActiveBooking(room.Bookings, today); active != nil {
			if room.Status != models.RoomOccupied {
				room.Status = models.RoomOccupied
				changedRooms = append(changedRooms, room)
				log.Printf("[Reconciler] room %s -> occupied", room.Number)
			}
			if active.State == models.StateConfirmed && !active.CheckIn.After(today) {
				active.State = models.StateInProgress
				changedBookings = append(changedBookings, active)
				log.Printf("[Reconciler] booking %d -> in_progress", active.ID)
			}
		} else {
			if room.Status != models.RoomAvailable {
				room.Status = models.RoomAvailable
				changedRooms = append(changedRooms, room)
				log.Printf("[Reconciler] room %s -> available", room.Number)
			}
			// Finished stays are closed out only once the room has no active
			// booking for the day.
			for j := range room.Bookings {
				b := &room.Bookings[j]
				if b.State.Open() && !b.CheckOut.After(today) {
					b.State = models.StateCompleted
					changedBookings = append(changedBookings, b)
					log.Printf("[Reconciler] booking %d -> completed", b.ID)
				}
			}
		}
	}

	if len(changedRooms) == 0 && len(changedBookings) == 0 {
		return nil
	}

	if err := r.store.Save(ctx, changedRooms, changedBookings); err != nil {
		return err
	}

	if r.publisher != nil {
		for _, room := range changedRooms {
			_ = r.publisher.Publish("room.status_changed", room)
		}
	}

	log.Printf("[Reconciler] sweep done: %d room(s), %d booking(s) updated",
		len(changedRooms), len(changedBookings))
	return nil
}
