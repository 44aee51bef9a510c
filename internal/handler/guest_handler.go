package handler

import (
	"errors"
	"net/http"

	"github.com/hotelsuite/hotel-management-api/internal/dto"
	"github.com/hotelsuite/hotel-management-api/internal/models"
	"github.com/hotelsuite/hotel-management-api/internal/service"
	"github.com/labstack/echo/v4"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

func (h *GuestHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/guests", h.CreateGuest)
	g.GET("/guests", h.ListGuests)
	g.GET("/guests/:id", h.GetGuest)
	g.PUT("/guests/:id", h.UpdateGuest)
	g.DELETE("/guests/:id", h.DeleteGuest)
}

func (h *GuestHandler) CreateGuest(c echo.Context) error {
	var req dto.CreateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest := &models.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Document:  req.Document,
		Address:   req.Address,
	}
	if err := h.svc.CreateGuest(c.Request().Context(), guest); err != nil {
		return guestError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest, err := h.svc.UpdateGuest(c.Request().Context(), id, service.UpdateGuestInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Document:  req.Document,
		Address:   req.Address,
	})
	if err != nil {
		return guestError(err)
	}

	return c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) DeleteGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteGuest(c.Request().Context(), id); err != nil {
		return guestError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GuestHandler) GetGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	guest, err := h.svc.GetGuest(c.Request().Context(), id)
	if err != nil {
		return guestError(err)
	}

	return c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) ListGuests(c echo.Context) error {
	guests, err := h.svc.ListGuests(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i := range guests {
		resp[i] = dto.ToGuestResponse(&guests[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func guestError(err error) error {
	switch {
	case errors.Is(err, service.ErrGuestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateDocument),
		errors.Is(err, service.ErrGuestHasActiveBookings):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
