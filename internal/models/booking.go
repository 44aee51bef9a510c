package models

import "time"

type BookingState string

const (
	StateConfirmed  BookingState = "confirmed"
	StateInProgress BookingState = "in_progress"
	StateCompleted  BookingState = "completed"
	StateCancelled  BookingState = "cancelled"
)

// Terminal reports whether no further transition may leave the state.
func (s BookingState) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// Open reports whether the booking still holds its room: a booking that is
// neither cancelled nor completed blocks overlapping date ranges.
func (s BookingState) Open() bool {
	return s == StateConfirmed || s == StateInProgress
}

type Booking struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	GuestID       uint         `gorm:"not null;index" json:"guest_id"`
	RoomID        uint         `gorm:"not null;index" json:"room_id"`
	ReferenceCode string       `gorm:"type:varchar(36);uniqueIndex" json:"reference_code"`
	CheckIn       time.Time    `gorm:"not null" json:"check_in"`
	CheckOut      time.Time    `gorm:"not null" json:"check_out"`
	Guests        int          `gorm:"not null" json:"guests"`
	TotalAmount   float64      `gorm:"not null" json:"total_amount"`
	State         BookingState `gorm:"type:varchar(20);not null;default:'confirmed'" json:"state"`
	Notes         string       `gorm:"type:varchar(500)" json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Nights is the calendar-day difference between check-out and check-in.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Midnight strips the time of day, keeping the calendar date in UTC.
// Every check-in/check-out comparison in the core operates on these values.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
