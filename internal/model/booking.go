package model

import "time"

// Booking represents a room booking at a hotel
type Booking struct {
	BookingID uint       `json:"booking_id" gorm:"primaryKey;column:booking_id"`
	TenantID  uint       `json:"tenant_id" gorm:"index;not null;column:tenant_id"`
	RoomID    *uint      `json:"room_id,omitempty" gorm:"index;column:room_id"`
	GuestID   *uint      `json:"guest_id,omitempty" gorm:"index;column:guest_id"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Status    string     `json:"status" gorm:"type:varchar(50)"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName overrides the default table name
func (Booking) TableName() string {
	return "bookings"
}
