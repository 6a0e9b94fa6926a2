package models

import (
	"time"
)

// Manager represents a back-office user who authenticates with email + password
type Manager struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicProfile returns the manager fields exposed over the API.
func (m *Manager) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":    m.ID,
		"name":  m.Name,
		"email": m.Email,
		"role":  RoleManager,
	}
}
