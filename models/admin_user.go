// File: /models/admin_user.go
package models

import (
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type AdminUser struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Role      string    `json:"role" gorm:"not null;default:'admin';size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
