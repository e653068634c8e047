package model

import "time"

// Room represents a room belonging to a hotel
type Room struct {
	RoomID        uint      `json:"room_id" gorm:"primaryKey;column:room_id"`
	TenantID      uint      `json:"tenant_id" gorm:"index;not null;column:tenant_id"`
	RoomNumber    string    `json:"room_number" gorm:"type:varchar(20);not null"`
	Type          string    `json:"type" gorm:"type:varchar(50)"`
	Status        string    `json:"status" gorm:"type:varchar(50)"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides the default table name
func (Room) TableName() string {
	return "rooms"
}
