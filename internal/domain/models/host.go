package models

import (
	"time"
)

// Host represents a visitor whose access is bounded by a date window.
// The window is inclusive on both ends.
type Host struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone           string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"phone"`
	PinHash         string    `gorm:"type:varchar(60);not null" json:"-"`
	Location        string    `gorm:"type:varchar(100);not null" json:"location"`
	AccessStartDate time.Time `gorm:"type:date;not null" json:"accessStartDate"`
	AccessEndDate   time.Time `gorm:"type:date;not null" json:"accessEndDate"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AccessWindowContains reports whether t falls inside the host's access
// window, comparing calendar dates in t's location.
func (h *Host) AccessWindowContains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := time.Date(h.AccessStartDate.Year(), h.AccessStartDate.Month(), h.AccessStartDate.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(h.AccessEndDate.Year(), h.AccessEndDate.Month(), h.AccessEndDate.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(start) && !day.After(end)
}

// PublicProfile returns the host fields exposed over the API.
func (h *Host) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":              h.ID,
		"name":            h.Name,
		"phone":           h.Phone,
		"role":            RoleHost,
		"location":        h.Location,
		"accessStartDate": h.AccessStartDate.Format("2006-01-02"),
		"accessEndDate":   h.AccessEndDate.Format("2006-01-02"),
		"isActive":        h.IsActive,
		"createdAt":       h.CreatedAt,
	}
}
