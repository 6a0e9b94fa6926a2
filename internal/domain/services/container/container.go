package container

import (
	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/config"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/database"
)

// ServiceContainer wires the stores into the domain services once at boot.
// Degraded is set when the database probe failed at startup; reads are then
// served from the in-memory fixture stores and every write or login is
// refused with 503 by the store guard middleware.
type ServiceContainer struct {
	Config   *config.Config
	Stores   *stores.Stores
	Pool     *database.ConnectionPool
	Degraded bool

	AuthService      services.InterfaceAuthService
	WorkerService    services.InterfaceWorkerService
	HostService      services.InterfaceHostService
	QRCodeService    services.InterfaceQRCodeService
	AccessLogService services.InterfaceAccessLogService
	StatsService     services.InterfaceStatsService
	Blacklist        services.InterfaceTokenBlacklistService
}

// NewServiceContainer builds the full service graph over one store bundle.
// pool is nil in degraded mode.
func NewServiceContainer(cfg *config.Config, s *stores.Stores, pool *database.ConnectionPool, degraded bool) *ServiceContainer {
	blacklist := services.NewTokenBlacklistService(cfg)

	return &ServiceContainer{
		Config:   cfg,
		Stores:   s,
		Pool:     pool,
		Degraded: degraded,

		AuthService:      services.NewAuthService(cfg, s, blacklist),
		WorkerService:    services.NewWorkerService(s),
		HostService:      services.NewHostService(s),
		QRCodeService:    services.NewQRCodeService(s),
		AccessLogService: services.NewAccessLogService(s),
		StatsService:     services.NewStatsService(s),
		Blacklist:        blacklist,
	}
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	switch name {
	case "auth":
		return c.AuthService
	case "worker":
		return c.WorkerService
	case "host":
		return c.HostService
	case "qrcode":
		return c.QRCodeService
	case "accessLog":
		return c.AccessLogService
	case "stats":
		return c.StatsService
	case "blacklist":
		return c.Blacklist
	default:
		return nil
	}
}
