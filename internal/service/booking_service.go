package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/repository"
	"github.com/hotelsuite/hotel-management-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	GuestID  uint
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Notes    string
}

// UpdateBookingInput supports partial updates via field presence.
type UpdateBookingInput struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   *int
	Notes    *string
	State    *models.BookingState
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uint) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByGuest(ctx context.Context, guestID uint) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	guestRepo   repository.GuestRepository
	publisher   *rabbitmq.Publisher

	// checkRoomStatus mirrors the availability checker's config flag for the
	// conflict check that runs inside the booking transaction.
	checkRoomStatus bool

	// now is injected so tests can pin "today"; only main wires the real clock.
	now func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	guestRepo repository.GuestRepository,
	publisher *rabbitmq.Publisher,
	checkRoomStatus bool,
	now func() time.Time,
) BookingService {
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		publisher:       publisher,
		checkRoomStatus: checkRoomStatus,
		now:             now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the room row to serialize concurrent booking attempts.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		if _, err := s.guestRepo.FindByID(ctx, in.GuestID); err != nil {
			return ErrGuestNotFound
		}

		checkIn := models.Midnight(in.CheckIn)
		checkOut := models.Midnight(in.CheckOut)
		today := models.Midnight(s.now())

		if !checkOut.After(checkIn) {
			return ErrInvalidDateRange
		}
		if checkIn.Before(today) {
			return ErrCheckInPast
		}
		if in.Guests > room.Capacity {
			return ErrCapacityExceeded
		}

		if s.checkRoomStatus && room.Status.ManuallyManaged() {
			return ErrRoomUnavailable
		}

		open, err := s.bookingRepo.FindOpenByRoomID(ctx, tx, in.RoomID)
		if err != nil {
			return err
		}
		if HasConflict(open, checkIn, checkOut, nil) {
			return ErrRoomUnavailable
		}

		booking := &models.Booking{
			GuestID:       in.GuestID,
			RoomID:        in.RoomID,
			ReferenceCode: uuid.NewString(),
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Guests:        in.Guests,
			Notes:         in.Notes,
			State:         models.StateConfirmed,
		}
		booking.TotalAmount = float64(booking.Nights()) * room.PricePerNight

		// A stay starting today is already in progress and occupies the room
		// immediately; the next reconciler tick must not be the first to notice.
		if !checkIn.After(today) {
			booking.State = models.StateInProgress
			if !room.Status.ManuallyManaged() && room.Status != models.RoomOccupied {
				room.Status = models.RoomOccupied
				if err := s.roomRepo.Save(ctx, tx, room); err != nil {
					return err
				}
			}
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}
	return result, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.State.Terminal() {
			return ErrBookingNotEditable
		}

		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}

		checkIn := booking.CheckIn
		checkOut := booking.CheckOut
		if in.CheckIn != nil {
			checkIn = models.Midnight(*in.CheckIn)
		}
		if in.CheckOut != nil {
			checkOut = models.Midnight(*in.CheckOut)
		}
		if !checkOut.After(checkIn) {
			return ErrInvalidDateRange
		}

		datesChanged := in.CheckIn != nil || in.CheckOut != nil
		if datesChanged {
			open, err := s.bookingRepo.FindOpenByRoomID(ctx, tx, booking.RoomID)
			if err != nil {
				return err
			}
			if HasConflict(open, checkIn, checkOut, &booking.ID) {
				return ErrRoomUnavailable
			}
		}

		if in.Guests != nil {
			if *in.Guests > room.Capacity {
				return ErrCapacityExceeded
			}
			booking.Guests = *in.Guests
		}
		if in.Notes != nil {
			booking.Notes = *in.Notes
		}

		booking.CheckIn = checkIn
		booking.CheckOut = checkOut

		// Re-derive the state from the new dates, then let an explicit state
		// in the request win (operator override).
		today := models.Midnight(s.now())
		switch {
		case !checkIn.After(today) && checkOut.After(today):
			booking.State = models.StateInProgress
		case !checkOut.After(today):
			booking.State = models.StateCompleted
		default:
			booking.State = models.StateConfirmed
		}
		if in.State != nil {
			booking.State = *in.State
		}

		if datesChanged {
			booking.TotalAmount = float64(booking.Nights()) * room.PricePerNight
		}

		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return err
		}

		if booking.State == models.StateInProgress &&
			!room.Status.ManuallyManaged() && room.Status != models.RoomOccupied {
			room.Status = models.RoomOccupied
			if err := s.roomRepo.Save(ctx, tx, room); err != nil {
				return err
			}
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", result)
	}
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.State.Terminal() {
			return ErrBookingNotCancelable
		}

		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}

		booking.State = models.StateCancelled
		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return err
		}

		// The room frees up right away when nothing else occupies it today;
		// waiting for the next reconciler tick would leave it shown occupied.
		open, err := s.bookingRepo.FindOpenByRoomID(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}
		if derived := DeriveStatus(room.Status, open, s.now()); derived != room.Status {
			room.Status = derived
			if err := s.roomRepo.Save(ctx, tx, room); err != nil {
				return err
			}
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", result)
	}
	return result, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.bookingRepo.Delete(ctx, id)
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

func (s *bookingService) ListBookingsByGuest(ctx context.Context, guestID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByGuestID(ctx, guestID)
}
