package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
)

func appendLog(t *testing.T, s *stores.Stores, workerID uint, accessType string, at time.Time) {
	t.Helper()
	id := workerID
	require.NoError(t, s.AccessLogs.Append(&models.AccessLog{
		WorkerID:   &id,
		AccessType: accessType,
		Location:   "Entrée principale",
		Timestamp:  at,
		Success:    true,
	}))
}

func TestClampHistoryLimit(t *testing.T) {
	assert.Equal(t, 50, clampHistoryLimit(0))
	assert.Equal(t, 50, clampHistoryLimit(-5))
	assert.Equal(t, 1, clampHistoryLimit(1))
	assert.Equal(t, 500, clampHistoryLimit(500))
	assert.Equal(t, 500, clampHistoryLimit(501))
	assert.Equal(t, 500, clampHistoryLimit(100000))
}

func TestNormalizeTypeFilter(t *testing.T) {
	assert.Equal(t, "entry", normalizeTypeFilter("entry"))
	assert.Equal(t, "exit", normalizeTypeFilter("exit"))
	assert.Equal(t, "", normalizeTypeFilter("qr_generation"))
	assert.Equal(t, "", normalizeTypeFilter("bogus"))
	assert.Equal(t, "", normalizeTypeFilter(""))
}

func TestWorkerHistoryNewestFirst(t *testing.T) {
	s := newTestStores(t)
	svc := NewAccessLogService(s)

	base := time.Now().Add(-time.Hour)
	appendLog(t, s, 1, models.AccessTypeEntry, base)
	appendLog(t, s, 1, models.AccessTypeExit, base.Add(10*time.Minute))
	appendLog(t, s, 1, models.AccessTypeEntry, base.Add(20*time.Minute))

	history, err := svc.WorkerHistory(1, "", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
	assert.True(t, history[1].Timestamp.After(history[2].Timestamp))
}

func TestWorkerHistoryTypeFilter(t *testing.T) {
	s := newTestStores(t)
	svc := NewAccessLogService(s)

	base := time.Now().Add(-time.Hour)
	appendLog(t, s, 1, models.AccessTypeEntry, base)
	appendLog(t, s, 1, models.AccessTypeExit, base.Add(time.Minute))
	appendLog(t, s, 1, models.AccessTypeEntry, base.Add(2*time.Minute))

	entries, err := svc.WorkerHistory(1, "entry", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// an unrecognized filter is ignored, not an error
	all, err := svc.WorkerHistory(1, "teleport", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWorkerHistoryLimit(t *testing.T) {
	s := newTestStores(t)
	svc := NewAccessLogService(s)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		appendLog(t, s, 1, models.AccessTypeEntry, base.Add(time.Duration(i)*time.Minute))
	}

	history, err := svc.WorkerHistory(1, "", 5)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestHistoryForMissingActor(t *testing.T) {
	s := newTestStores(t)
	svc := NewAccessLogService(s)

	_, err := svc.WorkerHistory(99, "", 0)
	assert.ErrorIs(t, err, stores.ErrNotFound)

	_, err = svc.HostHistory(99, "", 0)
	assert.ErrorIs(t, err, stores.ErrNotFound)
}

func TestRecordWorkerAccess(t *testing.T) {
	s := newTestStores(t)
	svc := NewAccessLogService(s)

	entry, err := svc.RecordWorkerAccess(1, "entry", "Parking B", "WKR-TEST")
	require.NoError(t, err)
	assert.Equal(t, models.AccessTypeEntry, entry.AccessType)
	assert.Equal(t, "Parking B", entry.Location)
	assert.Equal(t, "WKR-TEST", entry.QRCode)
	assert.True(t, entry.Success)
}

func TestRecordWorkerAccessDefaults(t *testing.T) {
	svc := NewAccessLogService(newTestStores(t))

	entry, err := svc.RecordWorkerAccess(1, "levitation", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.AccessTypeEntry, entry.AccessType, "unknown type falls back to entry")
	assert.Equal(t, "Entrée principale", entry.Location)
}
