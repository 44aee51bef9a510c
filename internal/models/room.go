package models

import "time"

// RoomType is stored as text, not an ordinal: the member set is open
// (new types appear without migrations).
type RoomType string

const (
	TypeSingle RoomType = "single"
	TypeDouble RoomType = "double"
	TypeSuite  RoomType = "suite"
	TypeFamily RoomType = "family"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

// ManuallyManaged reports whether the status is operator-controlled.
// The reconciler never enters or leaves these states.
func (s RoomStatus) ManuallyManaged() bool {
	return s == RoomMaintenance || s == RoomCleaning
}

type Room struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Number        string     `gorm:"type:varchar(10);not null;uniqueIndex" json:"number"`
	Type          RoomType   `gorm:"type:varchar(20);not null" json:"type"`
	Capacity      int        `gorm:"not null" json:"capacity"`
	PricePerNight float64    `gorm:"not null" json:"price_per_night"`
	Status        RoomStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Description   string     `gorm:"type:varchar(500)" json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}
