package dto

import (
	"strings"
	"time"

	"github.com/hotelsuite/hotel-management-api/internal/models"
)

type GuestResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Address   string    `json:"address,omitempty"`
	Bookings  int       `json:"bookings"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID            uint              `json:"id"`
	Number        string            `json:"number"`
	Type          models.RoomType   `json:"type"`
	Capacity      int               `json:"capacity"`
	PricePerNight float64           `json:"price_per_night"`
	Status        models.RoomStatus `json:"status"`
	Description   string            `json:"description,omitempty"`
}

type BookingResponse struct {
	ID            uint                `json:"id"`
	ReferenceCode string              `json:"reference_code"`
	GuestID       uint                `json:"guest_id"`
	GuestName     string              `json:"guest_name,omitempty"`
	RoomID        uint                `json:"room_id"`
	RoomNumber    string              `json:"room_number,omitempty"`
	CheckIn       string              `json:"check_in"`
	CheckOut      string              `json:"check_out"`
	Nights        int                 `json:"nights"`
	Guests        int                 `json:"guests"`
	TotalAmount   float64             `json:"total_amount"`
	State         models.BookingState `json:"state"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type AvailabilityResponse struct {
	RoomID    uint   `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Phone:     g.Phone,
		Document:  g.Document,
		Address:   g.Address,
		Bookings:  len(g.Bookings),
		CreatedAt: g.CreatedAt,
	}
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Status:        r.Status,
		Description:   r.Description,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		GuestID:       b.GuestID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn.Format(DateLayout),
		CheckOut:      b.CheckOut.Format(DateLayout),
		Nights:        b.Nights(),
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		State:         b.State,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
	if b.Guest != nil {
		resp.GuestName = strings.TrimSpace(b.Guest.FirstName + " " + b.Guest.LastName)
	}
	if b.Room != nil {
		resp.RoomNumber = b.Room.Number
	}
	return resp
}
