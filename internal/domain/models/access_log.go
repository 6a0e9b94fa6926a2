package models

import (
	"time"
)

// Role tags carried in tokens and login responses
const (
	RoleWorker  = "worker"
	RoleHost    = "host"
	RoleManager = "manager"
)

// Access event types recorded in the log. The history filter only honours
// entry and exit; any other value passed by a client is ignored.
const (
	AccessTypeEntry        = "entry"
	AccessTypeExit         = "exit"
	AccessTypeQRGeneration = "qr_generation"
)

// AccessLog is one append-only access event. Exactly one of WorkerID and
// HostID is set; rows are removed only by cascade when the actor is deleted.
type AccessLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkerID   *uint     `gorm:"index" json:"workerId,omitempty"`
	HostID     *uint     `gorm:"index" json:"hostId,omitempty"`
	AccessType string    `gorm:"type:varchar(20);not null" json:"type"`
	Location   string    `gorm:"type:varchar(100);not null" json:"location"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	Success    bool      `gorm:"not null" json:"success"`
	QRCode     string    `gorm:"type:varchar(50)" json:"qrCode,omitempty"`
	Details    string    `gorm:"type:varchar(500)" json:"details,omitempty"`

	Worker *Worker `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"-"`
	Host   *Host   `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`
}
