package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hotelsuite/hotel-management-api/internal/dto"
	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc     service.RoomService
	checker service.AvailabilityChecker
}

func NewRoomHandler(svc service.RoomService, checker service.AvailabilityChecker) *RoomHandler {
	return &RoomHandler{svc: svc, checker: checker}
}

func (h *RoomHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms", h.ListRooms)
	g.GET("/rooms/available", h.ListAvailableRooms)
	g.GET("/rooms/:id", h.GetRoom)
	g.GET("/rooms/:id/availability", h.CheckAvailability)
	g.PUT("/rooms/:id", h.UpdateRoom)
	g.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room := &models.Room{
		Number:        req.Number,
		Type:          models.RoomType(req.Type),
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        models.RoomAvailable,
		Description:   req.Description,
	}
	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return roomError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var in service.UpdateRoomInput
	in.Number = req.Number
	if req.Type != nil {
		t := models.RoomType(*req.Type)
		in.Type = &t
	}
	in.Capacity = req.Capacity
	in.PricePerNight = req.PricePerNight
	if req.Status != nil {
		s := models.RoomStatus(*req.Status)
		in.Status = &s
	}
	in.Description = req.Description

	room, err := h.svc.UpdateRoom(c.Request().Context(), id, in)
	if err != nil {
		return roomError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return roomError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return roomError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}

func (h *RoomHandler) ListAvailableRooms(c echo.Context) error {
	rooms, err := h.svc.ListAvailableRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// CheckAvailability answers whether the room is free for a date range:
// GET /rooms/:id/availability?check_in=2026-09-01&check_out=2026-09-04
func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	checkIn, err := dto.ParseDate(c.QueryParam("check_in"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_in date")
	}
	checkOut, err := dto.ParseDate(c.QueryParam("check_out"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be after check_in")
	}

	var exclude *uint
	if raw := c.QueryParam("exclude_booking_id"); raw != "" {
		excludeID, err := parseUintParam(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid exclude_booking_id")
		}
		exclude = &excludeID
	}

	available, err := h.checker.IsAvailable(c.Request().Context(), id, checkIn, checkOut, exclude)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		RoomID:    id,
		CheckIn:   checkIn.Format(dto.DateLayout),
		CheckOut:  checkOut.Format(dto.DateLayout),
		Available: available,
	})
}

func parseUintParam(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

func toRoomResponses(rooms []models.Room) []dto.RoomResponse {
	resp := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp[i] = dto.ToRoomResponse(&rooms[i])
	}
	return resp
}

func roomError(err error) error {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateRoomNumber),
		errors.Is(err, service.ErrRoomHasActiveBookings):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
