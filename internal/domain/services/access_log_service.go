package services

import (
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

// History page bounds. Requests outside them are clamped, not rejected.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// InterfaceAccessLogService serves access histories and records new events
type InterfaceAccessLogService interface {
	WorkerHistory(workerID uint, accessType string, limit int) ([]models.AccessLog, error)
	HostHistory(hostID uint, accessType string, limit int) ([]models.AccessLog, error)
	RecordWorkerAccess(workerID uint, accessType, location, qrCode string) (*models.AccessLog, error)
}

// AccessLogService reads and appends the access log. The log is append-only:
// nothing here updates or deletes rows.
type AccessLogService struct {
	Stores *stores.Stores
}

// NewAccessLogService creates a new access log service
func NewAccessLogService(s *stores.Stores) InterfaceAccessLogService {
	return &AccessLogService{Stores: s}
}

// WorkerHistory returns the newest events for an active worker
func (s *AccessLogService) WorkerHistory(workerID uint, accessType string, limit int) ([]models.AccessLog, error) {
	worker, err := s.Stores.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if !worker.IsActive {
		return nil, stores.ErrNotFound
	}

	return s.Stores.AccessLogs.ListByWorker(workerID, normalizeTypeFilter(accessType), clampHistoryLimit(limit))
}

// HostHistory returns the newest events for an active host
func (s *AccessLogService) HostHistory(hostID uint, accessType string, limit int) ([]models.AccessLog, error) {
	host, err := s.Stores.Hosts.GetByID(hostID)
	if err != nil {
		return nil, err
	}
	if !host.IsActive {
		return nil, stores.ErrNotFound
	}

	return s.Stores.AccessLogs.ListByHost(hostID, normalizeTypeFilter(accessType), clampHistoryLimit(limit))
}

// RecordWorkerAccess appends an entry or exit event for an active worker.
// Unknown access types are stored as entry.
func (s *AccessLogService) RecordWorkerAccess(workerID uint, accessType, location, qrCode string) (*models.AccessLog, error) {
	worker, err := s.Stores.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if !worker.IsActive {
		return nil, stores.ErrNotFound
	}

	accessType = utils.SanitizeInput(accessType)
	if accessType != models.AccessTypeEntry && accessType != models.AccessTypeExit {
		accessType = models.AccessTypeEntry
	}
	location = utils.SanitizeInput(location)
	if location == "" {
		location = "Entrée principale"
	}

	entry := &models.AccessLog{
		WorkerID:   &worker.ID,
		AccessType: accessType,
		Location:   location,
		Timestamp:  time.Now(),
		Success:    true,
		QRCode:     utils.SanitizeInput(qrCode),
	}
	if err := s.Stores.AccessLogs.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// normalizeTypeFilter keeps only entry and exit as filters. Anything else,
// qr_generation included, means no filtering.
func normalizeTypeFilter(accessType string) string {
	if accessType == models.AccessTypeEntry || accessType == models.AccessTypeExit {
		return accessType
	}
	return ""
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
