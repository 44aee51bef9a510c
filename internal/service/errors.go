package service

import "errors"

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrDuplicateRoomNumber = errors.New("a room with that number already exists")
	ErrDuplicateEmail      = errors.New("a guest with that email already exists")
	ErrDuplicateDocument   = errors.New("a guest with that identity document already exists")
	ErrUsernameTaken       = errors.New("username already taken")

	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
	ErrCapacityExceeded = errors.New("number of guests exceeds room capacity")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")

	ErrBookingNotEditable   = errors.New("cancelled or completed bookings cannot be modified")
	ErrBookingNotCancelable = errors.New("booking is already cancelled or completed")

	ErrGuestHasActiveBookings = errors.New("guest has active bookings and cannot be deleted")
	ErrRoomHasActiveBookings  = errors.New("room has active bookings and cannot be deleted")

	ErrInvalidCredentials = errors.New("invalid username or password")
)
