package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
)

func TestDashboardCounts(t *testing.T) {
	s := newTestStores(t)
	svc := NewStatsService(s)

	now := time.Now()
	appendLog(t, s, 1, models.AccessTypeEntry, now)
	appendLog(t, s, 1, models.AccessTypeEntry, now)
	appendLog(t, s, 2, models.AccessTypeEntry, now)
	appendLog(t, s, 1, models.AccessTypeExit, now)

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalWorkers)
	assert.Equal(t, int64(1), stats.TotalHosts)
	assert.Equal(t, int64(4), stats.TodayAccess)
	assert.Equal(t, int64(2), stats.ActiveAccess, "3 entries minus 1 exit")
}

func TestDashboardIgnoresOlderDays(t *testing.T) {
	s := newTestStores(t)
	svc := NewStatsService(s)

	yesterday := time.Now().AddDate(0, 0, -1)
	appendLog(t, s, 1, models.AccessTypeEntry, yesterday)
	appendLog(t, s, 1, models.AccessTypeEntry, yesterday)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Zero(t, stats.TodayAccess)
	assert.Zero(t, stats.ActiveAccess)
}

func TestDashboardOccupancyFloorsAtZero(t *testing.T) {
	s := newTestStores(t)
	svc := NewStatsService(s)

	// exits for entries made before midnight
	now := time.Now()
	appendLog(t, s, 1, models.AccessTypeExit, now)
	appendLog(t, s, 2, models.AccessTypeExit, now)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Zero(t, stats.ActiveAccess)
	assert.Equal(t, int64(2), stats.TodayAccess)
}

func TestDashboardTracksDeactivation(t *testing.T) {
	s := newTestStores(t)
	svc := NewStatsService(s)

	_, err := s.Workers.Update(1, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalWorkers)
}
