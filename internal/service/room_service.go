package service

import (
	"context"
	"errors"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/repository"
	"gorm.io/gorm"
)

// UpdateRoomInput supports partial updates via field presence. Status covers
// the administrative flips into and out of maintenance/cleaning.
type UpdateRoomInput struct {
	Number        *string
	Type          *models.RoomType
	Capacity      *int
	PricePerNight *float64
	Status        *models.RoomStatus
	Description   *string
}

type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, id uint, in UpdateRoomInput) (*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListAvailableRooms(ctx context.Context) ([]models.Room, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) error {
	taken, err := s.roomRepo.ExistsNumber(ctx, room.Number, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateRoomNumber
	}

	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) UpdateRoom(ctx context.Context, id uint, in UpdateRoomInput) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if in.Number != nil && *in.Number != room.Number {
		taken, err := s.roomRepo.ExistsNumber(ctx, *in.Number, room.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateRoomNumber
		}
		room.Number = *in.Number
	}
	if in.Type != nil {
		room.Type = *in.Type
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.PricePerNight != nil {
		room.PricePerNight = *in.PricePerNight
	}
	if in.Status != nil {
		room.Status = *in.Status
	}
	if in.Description != nil {
		room.Description = *in.Description
	}

	if err := s.roomRepo.Save(ctx, s.roomRepo.GetDB(), room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	for i := range room.Bookings {
		if room.Bookings[i].State.Open() {
			return ErrRoomHasActiveBookings
		}
	}
	return s.roomRepo.Delete(ctx, id)
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

func (s *roomService) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindByStatus(ctx, models.RoomAvailable)
}
