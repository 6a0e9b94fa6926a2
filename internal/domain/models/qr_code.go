package models

import (
	"time"
)

// QRCode is the response payload for a QR issuance. It is not persisted as
// its own table; the issuance is traced by a qr_generation access log row and
// every call mints a fresh code.
type QRCode struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	WorkerID    uint      `json:"workerId,omitempty"`
	HostID      uint      `json:"hostId,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	IsValid     bool      `json:"isValid"`
	ImageBase64 string    `json:"imageBase64"`
}
