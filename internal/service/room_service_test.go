package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/hotelsuite/hotel-management-api/internal/models"
)

func TestCreateRoom_DefaultsToAvailable(t *testing.T) {
	var created *models.Room
	repo := &mockRoomRepo{
		createFn: func(ctx context.Context, room *models.Room) error {
			created = room
			return nil
		},
	}

	svc := NewRoomService(repo)
	err := svc.CreateRoom(context.Background(), &models.Room{Number: "101", Type: models.TypeSingle, Capacity: 1, PricePerNight: 80})

	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, models.RoomAvailable, created.Status)
	}
}

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	repo := &mockRoomRepo{
		existsNumberFn: func(ctx context.Context, number string, excludeID uint) (bool, error) {
			return true, nil
		},
	}

	svc := NewRoomService(repo)
	err := svc.CreateRoom(context.Background(), &models.Room{Number: "101"})

	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestUpdateRoom_PartialFields(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return &models.Room{ID: 1, Number: "101", Type: models.TypeSingle, Capacity: 1, PricePerNight: 80, Status: models.RoomAvailable}, nil
		},
	}

	svc := NewRoomService(repo)
	price := 95.0
	status := models.RoomMaintenance
	room, err := svc.UpdateRoom(context.Background(), 1, UpdateRoomInput{PricePerNight: &price, Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, 95.0, room.PricePerNight)
	assert.Equal(t, models.RoomMaintenance, room.Status)
	// Untouched fields keep their values.
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, models.TypeSingle, room.Type)
}

func TestUpdateRoom_DuplicateNumber(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return &models.Room{ID: 1, Number: "101"}, nil
		},
		existsNumberFn: func(ctx context.Context, number string, excludeID uint) (bool, error) {
			assert.Equal(t, "102", number)
			assert.Equal(t, uint(1), excludeID)
			return true, nil
		},
	}

	svc := NewRoomService(repo)
	number := "102"
	_, err := svc.UpdateRoom(context.Background(), 1, UpdateRoomInput{Number: &number})

	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestUpdateRoom_NotFound(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewRoomService(repo)
	_, err := svc.UpdateRoom(context.Background(), 42, UpdateRoomInput{})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoom_BlockedByOpenBooking(t *testing.T) {
	deleted := false
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return &models.Room{
				ID: 1, Number: "101",
				Bookings: []models.Booking{
					{ID: 10, State: models.StateConfirmed},
				},
			}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	svc := NewRoomService(repo)
	err := svc.DeleteRoom(context.Background(), 1)

	assert.ErrorIs(t, err, ErrRoomHasActiveBookings)
	assert.False(t, deleted)
}

func TestDeleteRoom_ClosedBookingsAllowed(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return &models.Room{
				ID: 1, Number: "101",
				Bookings: []models.Booking{
					{ID: 10, State: models.StateCompleted},
					{ID: 11, State: models.StateCancelled},
				},
			}, nil
		},
	}

	svc := NewRoomService(repo)
	err := svc.DeleteRoom(context.Background(), 1)

	assert.NoError(t, err)
}

func TestListAvailableRooms_FiltersByStatus(t *testing.T) {
	repo := &mockRoomRepo{
		findByStatusFn: func(ctx context.Context, status models.RoomStatus) ([]models.Room, error) {
			assert.Equal(t, models.RoomAvailable, status)
			return []models.Room{{ID: 1, Number: "101", Status: models.RoomAvailable}}, nil
		},
	}

	svc := NewRoomService(repo)
	rooms, err := svc.ListAvailableRooms(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
}
