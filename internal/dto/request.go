package dto

import "time"

// DateLayout is the wire format for check-in/check-out dates. Bookings deal
// in calendar days, never times of day.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

type CreateGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Document  string `json:"document" validate:"required,max=20"`
	Address   string `json:"address" validate:"max=200"`
}

type UpdateGuestRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=150"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Document  *string `json:"document" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
}

type CreateRoomRequest struct {
	Number        string  `json:"number" validate:"required,max=10"`
	Type          string  `json:"type" validate:"required,max=20"`
	Capacity      int     `json:"capacity" validate:"required,gt=0,lte=10"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"max=500"`
}

type UpdateRoomRequest struct {
	Number        *string  `json:"number" validate:"omitempty,max=10"`
	Type          *string  `json:"type" validate:"omitempty,max=20"`
	Capacity      *int     `json:"capacity" validate:"omitempty,gt=0,lte=10"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gt=0"`
	Status        *string  `json:"status" validate:"omitempty,oneof=available occupied maintenance cleaning"`
	Description   *string  `json:"description" validate:"omitempty,max=500"`
}

type CreateBookingRequest struct {
	GuestID  uint   `json:"guest_id" validate:"required"`
	RoomID   uint   `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"required,gt=0"`
	Notes    string `json:"notes" validate:"max=500"`
}

type UpdateBookingRequest struct {
	CheckIn  *string `json:"check_in" validate:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	Guests   *int    `json:"guests" validate:"omitempty,gt=0"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
	State    *string `json:"state" validate:"omitempty,oneof=confirmed in_progress completed cancelled"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
