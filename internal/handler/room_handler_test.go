package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hotelsuite/hotel-management-api/internal/dto"
	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/service"
)

// --- Mock RoomService ---

type mockRoomService struct {
	createFn        func(ctx context.Context, room *models.Room) error
	updateFn        func(ctx context.Context, id uint, in service.UpdateRoomInput) (*models.Room, error)
	deleteFn        func(ctx context.Context, id uint) error
	getFn           func(ctx context.Context, id uint) (*models.Room, error)
	listFn          func(ctx context.Context) ([]models.Room, error)
	listAvailableFn func(ctx context.Context) ([]models.Room, error)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	return m.createFn(ctx, room)
}
func (m *mockRoomService) UpdateRoom(ctx context.Context, id uint, in service.UpdateRoomInput) (*models.Room, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockRoomService) DeleteRoom(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockRoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	return m.getFn(ctx, id)
}
func (m *mockRoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return m.listFn(ctx)
}
func (m *mockRoomService) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	return m.listAvailableFn(ctx)
}

type mockChecker struct {
	isAvailableFn func(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error)
}

func (m *mockChecker) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
	return m.isAvailableFn(ctx, roomID, checkIn, checkOut, excludeBookingID)
}

// --- Tests ---

func TestCreateRoom_Handler_Success(t *testing.T) {
	svc := &mockRoomService{
		createFn: func(ctx context.Context, room *models.Room) error {
			room.ID = 1
			return nil
		},
	}

	e := newEcho()
	body := `{"number":"101","type":"double","capacity":2,"price_per_night":120}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(svc, nil)
	err := h.CreateRoom(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RoomResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, models.RoomAvailable, resp.Status)
}

func TestCreateRoom_Handler_DuplicateNumber(t *testing.T) {
	svc := &mockRoomService{
		createFn: func(ctx context.Context, room *models.Room) error {
			return service.ErrDuplicateRoomNumber
		},
	}

	e := newEcho()
	body := `{"number":"101","type":"double","capacity":2,"price_per_night":120}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(svc, nil)
	err := h.CreateRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateRoom_Handler_InvalidStatus(t *testing.T) {
	e := newEcho()
	body := `{"status":"demolished"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rooms/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewRoomHandler(nil, nil)
	err := h.UpdateRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteRoom_Handler_ActiveBookings(t *testing.T) {
	svc := &mockRoomService{
		deleteFn: func(ctx context.Context, id uint) error {
			return service.ErrRoomHasActiveBookings
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/rooms/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewRoomHandler(svc, nil)
	err := h.DeleteRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCheckAvailability_Handler_Success(t *testing.T) {
	checker := &mockChecker{
		isAvailableFn: func(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
			assert.Equal(t, uint(1), roomID)
			assert.Nil(t, excludeBookingID)
			return true, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/1/availability?check_in=2026-09-01&check_out=2026-09-04", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewRoomHandler(nil, checker)
	err := h.CheckAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AvailabilityResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "2026-09-01", resp.CheckIn)
	assert.Equal(t, "2026-09-04", resp.CheckOut)
}

func TestCheckAvailability_Handler_ExcludeBookingID(t *testing.T) {
	checker := &mockChecker{
		isAvailableFn: func(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
			if assert.NotNil(t, excludeBookingID) {
				assert.Equal(t, uint(7), *excludeBookingID)
			}
			return true, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/1/availability?check_in=2026-09-01&check_out=2026-09-04&exclude_booking_id=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewRoomHandler(nil, checker)
	err := h.CheckAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckAvailability_Handler_ReversedRange(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/1/availability?check_in=2026-09-04&check_out=2026-09-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewRoomHandler(nil, nil)
	err := h.CheckAvailability(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
