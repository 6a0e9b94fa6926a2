package services

import (
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
)

// DashboardStats is the manager dashboard summary
type DashboardStats struct {
	TotalWorkers int64 `json:"totalWorkers"`
	TotalHosts   int64 `json:"totalHosts"`
	ActiveAccess int64 `json:"activeAccess"`
	TodayAccess  int64 `json:"todayAccess"`
}

// InterfaceStatsService computes dashboard statistics
type InterfaceStatsService interface {
	Dashboard() (*DashboardStats, error)
}

// StatsService derives the dashboard numbers from the stores on every call;
// nothing is cached at this layer.
type StatsService struct {
	Stores *stores.Stores
}

// NewStatsService creates a new stats service
func NewStatsService(s *stores.Stores) InterfaceStatsService {
	return &StatsService{Stores: s}
}

// Dashboard counts active workers and hosts, today's events, and the current
// building occupancy. Occupancy is today's successful entries minus exits,
// floored at zero since exits can be logged for entries made before midnight.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	workers, err := s.Stores.Workers.CountActive()
	if err != nil {
		return nil, err
	}
	hosts, err := s.Stores.Hosts.CountActive()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.Stores.AccessLogs.CountSince(startOfDay)
	if err != nil {
		return nil, err
	}
	entries, err := s.Stores.AccessLogs.CountSuccessfulSinceByType(startOfDay, models.AccessTypeEntry)
	if err != nil {
		return nil, err
	}
	exits, err := s.Stores.AccessLogs.CountSuccessfulSinceByType(startOfDay, models.AccessTypeExit)
	if err != nil {
		return nil, err
	}

	active := entries - exits
	if active < 0 {
		active = 0
	}

	return &DashboardStats{
		TotalWorkers: workers,
		TotalHosts:   hosts,
		ActiveAccess: active,
		TodayAccess:  today,
	}, nil
}
