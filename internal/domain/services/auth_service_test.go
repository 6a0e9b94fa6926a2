package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/config"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

func newTestStores(t *testing.T) *stores.Stores {
	t.Helper()
	s := stores.NewMemoryStores()
	require.NoError(t, stores.SeedSampleData(s, "manager123"))
	return s
}

func newTestAuthService(s *stores.Stores) InterfaceAuthService {
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	return NewAuthService(cfg, s, nil)
}

// countingWorkerStore records how often credentials are looked up
type countingWorkerStore struct {
	stores.WorkerStore
	lookups int
}

func (c *countingWorkerStore) FindActiveByPhone(phone string) (*models.Worker, error) {
	c.lookups++
	return c.WorkerStore.FindActiveByPhone(phone)
}

func TestLoginWorkerSuccess(t *testing.T) {
	s := newTestStores(t)
	auth := newTestAuthService(s)

	result, err := auth.LoginWorker("0612345678", "1234")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleWorker, result.Role)
	assert.Equal(t, 28800, result.ExpiresIn)
	assert.Equal(t, "Jean Dupont", result.User["name"])
	assert.NotContains(t, result.User, "pinHash")
	assert.NotContains(t, result.User, "pin")

	claims, err := auth.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleWorker, claims.Role)

	worker, err := s.Workers.GetByID(claims.UserID)
	require.NoError(t, err)
	require.NotNil(t, worker.LastAccess, "login must bump last access")
	assert.WithinDuration(t, time.Now(), *worker.LastAccess, 5*time.Second)
}

func TestLoginWorkerSanitizesInput(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	result, err := auth.LoginWorker("  0612345678  ", " 1234 ")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLoginWorkerFailureIsGeneric(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	_, unknownErr := auth.LoginWorker("0699999999", "1234")
	_, wrongPinErr := auth.LoginWorker("0612345678", "4321")

	assert.ErrorIs(t, unknownErr, ErrBadCredentials)
	assert.ErrorIs(t, wrongPinErr, ErrBadCredentials)
	assert.Equal(t, unknownErr, wrongPinErr, "unknown account and wrong PIN must be indistinguishable")
}

func TestLoginWorkerValidatesBeforeStoreAccess(t *testing.T) {
	s := newTestStores(t)
	counting := &countingWorkerStore{WorkerStore: s.Workers}
	s.Workers = counting
	auth := newTestAuthService(s)

	_, err := auth.LoginWorker("12345", "1234")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = auth.LoginWorker("0612345678", "12")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	assert.Zero(t, counting.lookups, "validation failures must not reach the store")
}

func TestLoginDeactivatedWorker(t *testing.T) {
	s := newTestStores(t)
	_, err := s.Workers.Update(1, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	auth := newTestAuthService(s)
	_, err = auth.LoginWorker("0612345678", "1234")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginHostInsideWindow(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	result, err := auth.LoginHost("0687654321", "5678")
	require.NoError(t, err)
	assert.Equal(t, models.RoleHost, result.Role)
	assert.Equal(t, "Marie Visiteur", result.User["name"])
}

func TestLoginHostOutsideWindow(t *testing.T) {
	s := newTestStores(t)

	pinHash, err := utils.HashSecret("4242")
	require.NoError(t, err)
	expired := &models.Host{
		Name:            "Visite Terminée",
		Phone:           "0611111111",
		PinHash:         pinHash,
		Location:        "Accueil",
		AccessStartDate: time.Now().AddDate(0, 0, -14),
		AccessEndDate:   time.Now().AddDate(0, 0, -7),
		IsActive:        true,
	}
	require.NoError(t, s.Hosts.Create(expired))

	auth := newTestAuthService(s)
	_, err = auth.LoginHost("0611111111", "4242")
	assert.ErrorIs(t, err, ErrBadCredentials, "expired window must look like bad credentials")
}

func TestLoginManager(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	result, err := auth.LoginManager("manager@entreprise.com", "manager123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, result.Role)
	assert.NotContains(t, result.User, "passwordHash")

	_, err = auth.LoginManager("manager@entreprise.com", "wrongpass")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = auth.LoginManager("not-an-email", "manager123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = auth.LoginManager("manager@entreprise.com", "short")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	result, err := auth.LoginWorker("0612345678", "1234")
	require.NoError(t, err)

	_, err = auth.ValidateToken(result.Token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = auth.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	s := newTestStores(t)
	auth := newTestAuthService(s)
	other := NewAuthService(&config.Config{JWTSecretKey: "other-secret"}, s, nil)

	token, err := other.GenerateToken(1, models.RoleWorker)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestLogoutWithoutBlacklist(t *testing.T) {
	auth := newTestAuthService(newTestStores(t))

	result, err := auth.LoginWorker("0612345678", "1234")
	require.NoError(t, err)

	assert.NoError(t, auth.Logout(result.Token))

	// without a blacklist backend the token stays valid until expiry
	_, err = auth.ValidateToken(result.Token)
	assert.NoError(t, err)
}
