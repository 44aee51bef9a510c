package service

import (
	"context"
	"errors"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/repository"
	"gorm.io/gorm"
)

// UpdateGuestInput supports partial updates via field presence.
type UpdateGuestInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Document  *string
	Address   *string
}

type GuestService interface {
	CreateGuest(ctx context.Context, guest *models.Guest) error
	UpdateGuest(ctx context.Context, id uint, in UpdateGuestInput) (*models.Guest, error)
	DeleteGuest(ctx context.Context, id uint) error
	GetGuest(ctx context.Context, id uint) (*models.Guest, error)
	ListGuests(ctx context.Context) ([]models.Guest, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

func (s *guestService) CreateGuest(ctx context.Context, guest *models.Guest) error {
	taken, err := s.guestRepo.ExistsEmail(ctx, guest.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	taken, err = s.guestRepo.ExistsDocument(ctx, guest.Document, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateDocument
	}

	return s.guestRepo.Create(ctx, guest)
}

func (s *guestService) UpdateGuest(ctx context.Context, id uint, in UpdateGuestInput) (*models.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	if in.Email != nil && *in.Email != guest.Email {
		taken, err := s.guestRepo.ExistsEmail(ctx, *in.Email, guest.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateEmail
		}
		guest.Email = *in.Email
	}
	if in.Document != nil && *in.Document != guest.Document {
		taken, err := s.guestRepo.ExistsDocument(ctx, *in.Document, guest.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateDocument
		}
		guest.Document = *in.Document
	}
	if in.FirstName != nil {
		guest.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		guest.LastName = *in.LastName
	}
	if in.Phone != nil {
		guest.Phone = *in.Phone
	}
	if in.Address != nil {
		guest.Address = *in.Address
	}

	if err := s.guestRepo.Save(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, id uint) error {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return err
	}

	for i := range guest.Bookings {
		if guest.Bookings[i].State.Open() {
			return ErrGuestHasActiveBookings
		}
	}
	return s.guestRepo.Delete(ctx, id)
}

func (s *guestService) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *guestService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return s.guestRepo.FindAll(ctx)
}
