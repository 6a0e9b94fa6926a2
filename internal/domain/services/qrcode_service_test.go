package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
)

func TestGenerateForWorker(t *testing.T) {
	s := newTestStores(t)
	qr := NewQRCodeService(s)

	issued, err := qr.GenerateForWorker(1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(issued.Code, "WKR-"), "code %q", issued.Code)
	assert.True(t, strings.HasPrefix(issued.ID, "qr_"))
	assert.Equal(t, uint(1), issued.WorkerID)
	assert.True(t, issued.IsValid)
	assert.NotEmpty(t, issued.ImageBase64)
	assert.Equal(t, issued.GeneratedAt.Add(8*time.Hour), issued.ExpiresAt)

	history, err := s.AccessLogs.ListByWorker(1, "", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.AccessTypeQRGeneration, history[0].AccessType)
	assert.Equal(t, issued.Code, history[0].QRCode)
	assert.True(t, history[0].Success)
}

func TestGenerateForHost(t *testing.T) {
	s := newTestStores(t)
	qr := NewQRCodeService(s)

	issued, err := qr.GenerateForHost(1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(issued.Code, "HST-"), "code %q", issued.Code)
	assert.Equal(t, uint(1), issued.HostID)
	assert.Equal(t, issued.GeneratedAt.Add(4*time.Hour), issued.ExpiresAt)

	history, err := s.AccessLogs.ListByHost(1, "", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Salle de réunion A", history[0].Location)
}

func TestGenerateCodesAreDistinct(t *testing.T) {
	qr := NewQRCodeService(newTestStores(t))

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		issued, err := qr.GenerateForWorker(1)
		require.NoError(t, err)
		assert.False(t, seen[issued.Code], "duplicate code %q", issued.Code)
		seen[issued.Code] = true
	}
}

func TestGenerateForMissingOrInactiveActor(t *testing.T) {
	s := newTestStores(t)
	qr := NewQRCodeService(s)

	_, err := qr.GenerateForWorker(99)
	assert.ErrorIs(t, err, stores.ErrNotFound)

	_, err = s.Workers.Update(1, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	_, err = qr.GenerateForWorker(1)
	assert.ErrorIs(t, err, stores.ErrNotFound)

	history, err := s.AccessLogs.ListByWorker(1, "", 0)
	require.NoError(t, err)
	assert.Empty(t, history, "refused issuance must not leave a trace")
}
