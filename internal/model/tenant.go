package model

import "time"

// Tenant represents a hotel. Each hotel is a tenant owning its own
// rooms, guests and bookings.
type Tenant struct {
	TenantID      uint      `json:"tenant_id" gorm:"primaryKey;column:tenant_id"`
	HotelName     string    `json:"hotel_name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Address       string    `json:"address" gorm:"type:varchar(500);not null"`
	ContactNumber string    `json:"contact_number" gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Rooms    []Room    `json:"rooms,omitempty" gorm:"foreignKey:TenantID;references:TenantID"`
	Guests   []Guest   `json:"guests,omitempty" gorm:"foreignKey:TenantID;references:TenantID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:TenantID;references:TenantID"`
}

// TableName overrides the default table name
func (Tenant) TableName() string {
	return "tenants"
}
