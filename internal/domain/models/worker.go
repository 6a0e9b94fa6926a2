package models

import (
	"time"
)

// Worker represents an employee who authenticates with phone + PIN
type Worker struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Phone      string     `gorm:"type:varchar(10);uniqueIndex;not null" json:"phone"`
	PinHash    string     `gorm:"type:varchar(60);not null" json:"-"`
	Department string     `gorm:"type:varchar(50);not null" json:"department"`
	IsActive   bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LastAccess *time.Time `json:"lastAccess"`
}

// PublicProfile returns the worker fields exposed over the API.
// The PIN hash never leaves the server.
func (w *Worker) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":         w.ID,
		"name":       w.Name,
		"phone":      w.Phone,
		"role":       RoleWorker,
		"department": w.Department,
		"isActive":   w.IsActive,
		"createdAt":  w.CreatedAt,
		"lastAccess": w.LastAccess,
	}
}
