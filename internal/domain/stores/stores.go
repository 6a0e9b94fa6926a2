package stores

import (
	"errors"
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
)

// Store errors. Services translate these to API error codes; no store error
// reaches a handler unformatted.
var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique natural key is already taken
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnavailable is returned when the backing store cannot serve the call
	ErrUnavailable = errors.New("store unavailable")
)

// WorkerStore is the persistence port for workers
type WorkerStore interface {
	List() ([]models.Worker, error)
	GetByID(id uint) (*models.Worker, error)
	FindActiveByPhone(phone string) (*models.Worker, error)
	ExistsPhone(phone string, excludeID uint) (bool, error)
	Create(worker *models.Worker) error
	Update(id uint, updates map[string]interface{}) (*models.Worker, error)
	Delete(id uint) error
	TouchLastAccess(id uint, at time.Time) error
	CountActive() (int64, error)
}

// HostStore is the persistence port for hosts
type HostStore interface {
	List() ([]models.Host, error)
	GetByID(id uint) (*models.Host, error)
	FindActiveByPhone(phone string) (*models.Host, error)
	ExistsPhone(phone string, excludeID uint) (bool, error)
	Create(host *models.Host) error
	Update(id uint, updates map[string]interface{}) (*models.Host, error)
	Delete(id uint) error
	CountActive() (int64, error)
}

// ManagerStore is the persistence port for managers
type ManagerStore interface {
	GetByID(id uint) (*models.Manager, error)
	FindActiveByEmail(email string) (*models.Manager, error)
	Create(manager *models.Manager) error
	Count() (int64, error)
}

// AccessLogStore is the persistence port for the append-only access log
type AccessLogStore interface {
	Append(entry *models.AccessLog) error
	ListByWorker(workerID uint, accessType string, limit int) ([]models.AccessLog, error)
	ListByHost(hostID uint, accessType string, limit int) ([]models.AccessLog, error)
	CountSince(since time.Time) (int64, error)
	CountSuccessfulSinceByType(since time.Time, accessType string) (int64, error)
}

// Stores bundles the four ports. One bundle is built at process start (GORM
// against MySQL, or the in-memory adapter when the database probe fails) and
// injected everywhere; there is no package-global handle.
type Stores struct {
	Workers    WorkerStore
	Hosts      HostStore
	Managers   ManagerStore
	AccessLogs AccessLogStore
}
