package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

func TestCreateHost(t *testing.T) {
	svc := NewHostService(newTestStores(t))

	host, err := svc.CreateHost("Paul Invité", "0655443322", "1357", "Bâtiment C", "2026-09-01", "2026-09-05")
	require.NoError(t, err)

	assert.NotZero(t, host.ID)
	assert.True(t, host.IsActive)
	assert.True(t, utils.CheckSecretHash("1357", host.PinHash))
	assert.Equal(t, "2026-09-01", host.AccessStartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-09-05", host.AccessEndDate.Format("2006-01-02"))
}

func TestCreateHostValidation(t *testing.T) {
	svc := NewHostService(newTestStores(t))

	_, err := svc.CreateHost("Paul", "0655443322", "1357", "Bâtiment C", "01/09/2026", "2026-09-05")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.CreateHost("Paul", "0655443322", "1357", "Bâtiment C", "2026-09-05", "2026-09-01")
	assert.ErrorIs(t, err, ErrInvalidDate, "inverted window")

	_, err = svc.CreateHost("Paul", "0655443322", "1357", "", "2026-09-01", "2026-09-05")
	assert.ErrorIs(t, err, ErrMissingField)

	// 0687654321 belongs to the seeded Marie Visiteur
	_, err = svc.CreateHost("Paul", "0687654321", "1357", "Bâtiment C", "2026-09-01", "2026-09-05")
	assert.ErrorIs(t, err, ErrPhoneInUse)
}

func TestUpdateHostWindow(t *testing.T) {
	svc := NewHostService(newTestStores(t))

	host, err := svc.UpdateHost(1, HostUpdate{AccessEndDate: strPtr("2030-01-15")})
	require.NoError(t, err)
	assert.Equal(t, "2030-01-15", host.AccessEndDate.Format("2006-01-02"))

	// moving the start past the current end must fail
	_, err = svc.UpdateHost(1, HostUpdate{AccessStartDate: strPtr("2031-01-01")})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSetHostStatus(t *testing.T) {
	s := newTestStores(t)
	svc := NewHostService(s)

	host, err := svc.SetHostStatus(1, false)
	require.NoError(t, err)
	assert.False(t, host.IsActive)

	count, err := s.Hosts.CountActive()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHostWindowIsInclusive(t *testing.T) {
	svc := NewHostService(newTestStores(t))

	today := time.Now().Format("2006-01-02")
	host, err := svc.CreateHost("Un Jour", "0622334455", "9999", "Accueil", today, today)
	require.NoError(t, err)

	assert.True(t, host.AccessWindowContains(time.Now()))
	assert.False(t, host.AccessWindowContains(time.Now().AddDate(0, 0, 1)))
	assert.False(t, host.AccessWindowContains(time.Now().AddDate(0, 0, -1)))
}
