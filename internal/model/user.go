package model

import "time"

// User roles understood by the dashboard
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents an application user. A manager without a tenant
// assignment is considered unassigned.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Role      string    `json:"role" gorm:"type:varchar(50);not null;default:'manager'"`
	TenantID  *uint     `json:"tenant_id,omitempty" gorm:"index;column:tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
