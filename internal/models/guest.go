package models

import "time"

type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Document  string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"document"`
	Address   string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:GuestID" json:"bookings,omitempty"`
}
