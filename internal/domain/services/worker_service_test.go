package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateWorker(t *testing.T) {
	s := newTestStores(t)
	svc := NewWorkerService(s)

	worker, err := svc.CreateWorker("Luc Martin", "0644556677", "2468", "Finance")
	require.NoError(t, err)

	assert.NotZero(t, worker.ID)
	assert.True(t, worker.IsActive)
	assert.NotEqual(t, "2468", worker.PinHash)
	assert.True(t, utils.CheckSecretHash("2468", worker.PinHash))
}

func TestCreateWorkerValidation(t *testing.T) {
	svc := NewWorkerService(newTestStores(t))

	_, err := svc.CreateWorker("Luc", "0512345678", "2468", "Finance")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = svc.CreateWorker("Luc", "0644556677", "24", "Finance")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	_, err = svc.CreateWorker("", "0644556677", "2468", "Finance")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateWorker("Luc", "0644556677", "2468", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCreateWorkerDuplicatePhone(t *testing.T) {
	svc := NewWorkerService(newTestStores(t))

	// 0612345678 belongs to the seeded Jean Dupont
	_, err := svc.CreateWorker("Imposteur", "0612345678", "2468", "Finance")
	assert.ErrorIs(t, err, ErrPhoneInUse)
}

func TestUpdateWorkerRehashesPin(t *testing.T) {
	s := newTestStores(t)
	svc := NewWorkerService(s)

	worker, err := svc.UpdateWorker(1, WorkerUpdate{Pin: strPtr("8765")})
	require.NoError(t, err)
	assert.True(t, utils.CheckSecretHash("8765", worker.PinHash))
	assert.False(t, utils.CheckSecretHash("1234", worker.PinHash))
}

func TestUpdateWorkerDuplicatePhone(t *testing.T) {
	svc := NewWorkerService(newTestStores(t))

	// worker 1 taking worker 2's phone
	_, err := svc.UpdateWorker(1, WorkerUpdate{Phone: strPtr("0698765432")})
	assert.ErrorIs(t, err, ErrPhoneInUse)

	// keeping one's own phone is allowed
	_, err = svc.UpdateWorker(1, WorkerUpdate{Phone: strPtr("0612345678")})
	assert.NoError(t, err)
}

func TestUpdateWorkerNotFound(t *testing.T) {
	svc := NewWorkerService(newTestStores(t))

	_, err := svc.UpdateWorker(99, WorkerUpdate{Name: strPtr("Personne")})
	assert.ErrorIs(t, err, stores.ErrNotFound)
}

func TestSetWorkerStatus(t *testing.T) {
	s := newTestStores(t)
	svc := NewWorkerService(s)

	worker, err := svc.SetWorkerStatus(1, false)
	require.NoError(t, err)
	assert.False(t, worker.IsActive)

	count, err := s.Workers.CountActive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	worker, err = svc.SetWorkerStatus(1, true)
	require.NoError(t, err)
	assert.True(t, worker.IsActive)
}

func TestDeleteWorkerCascadesHistory(t *testing.T) {
	s := newTestStores(t)
	svc := NewWorkerService(s)

	qr := NewQRCodeService(s)
	_, err := qr.GenerateForWorker(1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorker(1))

	_, err = s.Workers.GetByID(1)
	assert.ErrorIs(t, err, stores.ErrNotFound)

	history, err := s.AccessLogs.ListByWorker(1, "", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}
