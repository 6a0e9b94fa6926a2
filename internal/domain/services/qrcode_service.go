package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

// QR validity per role. Hosts get the shorter window.
const (
	WorkerQRValidity = 8 * time.Hour
	HostQRValidity   = 4 * time.Hour
)

// Code prefixes distinguish the issuing population at the turnstile
const (
	workerCodePrefix = "WKR"
	hostCodePrefix   = "HST"
)

// qrImagePlaceholder is a 1x1 transparent PNG. Rendering the real image is
// delegated to the mobile client; the server only issues the code payload.
const qrImagePlaceholder = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// InterfaceQRCodeService issues short-lived QR access codes
type InterfaceQRCodeService interface {
	GenerateForWorker(workerID uint) (*models.QRCode, error)
	GenerateForHost(hostID uint) (*models.QRCode, error)
}

// QRCodeService mints a fresh code on every call and traces each issuance
// with a qr_generation access log row. Codes are never stored as rows of
// their own; validity is carried in the expiry timestamp.
type QRCodeService struct {
	Stores *stores.Stores
}

// NewQRCodeService creates a new QR code service
func NewQRCodeService(s *stores.Stores) InterfaceQRCodeService {
	return &QRCodeService{Stores: s}
}

// GenerateForWorker issues a code valid for 8 hours
func (s *QRCodeService) GenerateForWorker(workerID uint) (*models.QRCode, error) {
	worker, err := s.Stores.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if !worker.IsActive {
		return nil, stores.ErrNotFound
	}

	now := time.Now()
	code := newAccessCode(workerCodePrefix, now)

	entry := &models.AccessLog{
		WorkerID:   &worker.ID,
		AccessType: models.AccessTypeQRGeneration,
		Location:   "Mobile App",
		Timestamp:  now,
		Success:    true,
		QRCode:     code,
		Details:    "QR Code generated",
	}
	if err := s.Stores.AccessLogs.Append(entry); err != nil {
		return nil, err
	}

	return &models.QRCode{
		ID:          "qr_" + uuid.New().String(),
		Code:        code,
		WorkerID:    worker.ID,
		GeneratedAt: now,
		ExpiresAt:   now.Add(WorkerQRValidity),
		IsValid:     true,
		ImageBase64: qrImagePlaceholder,
	}, nil
}

// GenerateForHost issues a code valid for 4 hours
func (s *QRCodeService) GenerateForHost(hostID uint) (*models.QRCode, error) {
	host, err := s.Stores.Hosts.GetByID(hostID)
	if err != nil {
		return nil, err
	}
	if !host.IsActive {
		return nil, stores.ErrNotFound
	}

	now := time.Now()
	code := newAccessCode(hostCodePrefix, now)

	entry := &models.AccessLog{
		HostID:     &host.ID,
		AccessType: models.AccessTypeQRGeneration,
		Location:   host.Location,
		Timestamp:  now,
		Success:    true,
		QRCode:     code,
		Details:    "QR Code generated",
	}
	if err := s.Stores.AccessLogs.Append(entry); err != nil {
		return nil, err
	}

	return &models.QRCode{
		ID:          "qr_" + uuid.New().String(),
		Code:        code,
		HostID:      host.ID,
		GeneratedAt: now,
		ExpiresAt:   now.Add(HostQRValidity),
		IsValid:     true,
		ImageBase64: qrImagePlaceholder,
	}, nil
}

// newAccessCode builds PREFIX-<millis base36><random base36>. The random
// suffix keeps two issuances in the same millisecond distinct.
func newAccessCode(prefix string, at time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
	n := int64(utils.RandomInt32()) & 0x7FFFFFFF
	suffix := strings.ToUpper(strconv.FormatInt(n%1296, 36))
	for len(suffix) < 2 {
		suffix = "0" + suffix
	}
	return prefix + "-" + ts + suffix
}
