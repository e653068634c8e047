package model

import "time"

// Guest represents a guest registered at a hotel
type Guest struct {
	GuestID   uint      `json:"guest_id" gorm:"primaryKey;column:guest_id"`
	TenantID  uint      `json:"tenant_id" gorm:"index;not null;column:tenant_id"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255)"`
	Email     string    `json:"email" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name
func (Guest) TableName() string {
	return "guests"
}
