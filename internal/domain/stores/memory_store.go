package stores

import (
	"sort"
	"sync"
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
)

// memoryData is the shared state behind the in-memory adapter
type memoryData struct {
	mu         sync.RWMutex
	workers    map[uint]models.Worker
	hosts      map[uint]models.Host
	managers   map[uint]models.Manager
	accessLogs []models.AccessLog
	nextWorker uint
	nextHost   uint
	nextMgr    uint
	nextLog    uint
}

// NewMemoryStores builds the in-memory store bundle. It backs two things:
// the degraded mode entered when the database probe fails at startup, and
// the service tests. Reads behave like the MySQL adapter; mutations work
// in-process only and are never durable.
func NewMemoryStores() *Stores {
	data := &memoryData{
		workers:    make(map[uint]models.Worker),
		hosts:      make(map[uint]models.Host),
		managers:   make(map[uint]models.Manager),
		nextWorker: 1,
		nextHost:   1,
		nextMgr:    1,
		nextLog:    1,
	}
	return &Stores{
		Workers:    &memoryWorkerStore{data: data},
		Hosts:      &memoryHostStore{data: data},
		Managers:   &memoryManagerStore{data: data},
		AccessLogs: &memoryAccessLogStore{data: data},
	}
}

type memoryWorkerStore struct {
	data *memoryData
}

func (s *memoryWorkerStore) List() ([]models.Worker, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	workers := make([]models.Worker, 0, len(s.data.workers))
	for _, w := range s.data.workers {
		workers = append(workers, w)
	}
	sort.Slice(workers, func(i, j int) bool {
		if workers[i].CreatedAt.Equal(workers[j].CreatedAt) {
			return workers[i].ID > workers[j].ID
		}
		return workers[i].CreatedAt.After(workers[j].CreatedAt)
	})
	return workers, nil
}

func (s *memoryWorkerStore) GetByID(id uint) (*models.Worker, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	worker, ok := s.data.workers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &worker, nil
}

func (s *memoryWorkerStore) FindActiveByPhone(phone string) (*models.Worker, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, w := range s.data.workers {
		if w.Phone == phone && w.IsActive {
			worker := w
			return &worker, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryWorkerStore) ExistsPhone(phone string, excludeID uint) (bool, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, w := range s.data.workers {
		if w.Phone == phone && w.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryWorkerStore) Create(worker *models.Worker) error {
	if exists, _ := s.ExistsPhone(worker.Phone, 0); exists {
		return ErrDuplicate
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	worker.ID = s.data.nextWorker
	s.data.nextWorker++
	now := time.Now()
	if worker.CreatedAt.IsZero() {
		worker.CreatedAt = now
	}
	worker.UpdatedAt = now
	s.data.workers[worker.ID] = *worker
	return nil
}

func (s *memoryWorkerStore) Update(id uint, updates map[string]interface{}) (*models.Worker, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	worker, ok := s.data.workers[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			worker.Name = value.(string)
		case "phone":
			worker.Phone = value.(string)
		case "pin_hash":
			worker.PinHash = value.(string)
		case "department":
			worker.Department = value.(string)
		case "is_active":
			worker.IsActive = value.(bool)
		}
	}
	worker.UpdatedAt = time.Now()
	s.data.workers[id] = worker
	return &worker, nil
}

func (s *memoryWorkerStore) Delete(id uint) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.workers[id]; !ok {
		return ErrNotFound
	}
	delete(s.data.workers, id)

	// cascade, mirroring the foreign key on access_logs
	kept := s.data.accessLogs[:0]
	for _, entry := range s.data.accessLogs {
		if entry.WorkerID == nil || *entry.WorkerID != id {
			kept = append(kept, entry)
		}
	}
	s.data.accessLogs = kept
	return nil
}

func (s *memoryWorkerStore) TouchLastAccess(id uint, at time.Time) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	worker, ok := s.data.workers[id]
	if !ok {
		return ErrNotFound
	}
	worker.LastAccess = &at
	s.data.workers[id] = worker
	return nil
}

func (s *memoryWorkerStore) CountActive() (int64, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	var count int64
	for _, w := range s.data.workers {
		if w.IsActive {
			count++
		}
	}
	return count, nil
}

type memoryHostStore struct {
	data *memoryData
}

func (s *memoryHostStore) List() ([]models.Host, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	hosts := make([]models.Host, 0, len(s.data.hosts))
	for _, h := range s.data.hosts {
		hosts = append(hosts, h)
	}
	sort.Slice(hosts, func(i, j int) bool {
		if hosts[i].CreatedAt.Equal(hosts[j].CreatedAt) {
			return hosts[i].ID > hosts[j].ID
		}
		return hosts[i].CreatedAt.After(hosts[j].CreatedAt)
	})
	return hosts, nil
}

func (s *memoryHostStore) GetByID(id uint) (*models.Host, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	host, ok := s.data.hosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &host, nil
}

func (s *memoryHostStore) FindActiveByPhone(phone string) (*models.Host, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, h := range s.data.hosts {
		if h.Phone == phone && h.IsActive {
			host := h
			return &host, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryHostStore) ExistsPhone(phone string, excludeID uint) (bool, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, h := range s.data.hosts {
		if h.Phone == phone && h.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryHostStore) Create(host *models.Host) error {
	if exists, _ := s.ExistsPhone(host.Phone, 0); exists {
		return ErrDuplicate
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	host.ID = s.data.nextHost
	s.data.nextHost++
	now := time.Now()
	if host.CreatedAt.IsZero() {
		host.CreatedAt = now
	}
	host.UpdatedAt = now
	s.data.hosts[host.ID] = *host
	return nil
}

func (s *memoryHostStore) Update(id uint, updates map[string]interface{}) (*models.Host, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	host, ok := s.data.hosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			host.Name = value.(string)
		case "phone":
			host.Phone = value.(string)
		case "pin_hash":
			host.PinHash = value.(string)
		case "location":
			host.Location = value.(string)
		case "access_start_date":
			host.AccessStartDate = value.(time.Time)
		case "access_end_date":
			host.AccessEndDate = value.(time.Time)
		case "is_active":
			host.IsActive = value.(bool)
		}
	}
	host.UpdatedAt = time.Now()
	s.data.hosts[id] = host
	return &host, nil
}

func (s *memoryHostStore) Delete(id uint) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.hosts[id]; !ok {
		return ErrNotFound
	}
	delete(s.data.hosts, id)

	kept := s.data.accessLogs[:0]
	for _, entry := range s.data.accessLogs {
		if entry.HostID == nil || *entry.HostID != id {
			kept = append(kept, entry)
		}
	}
	s.data.accessLogs = kept
	return nil
}

func (s *memoryHostStore) CountActive() (int64, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	var count int64
	for _, h := range s.data.hosts {
		if h.IsActive {
			count++
		}
	}
	return count, nil
}

type memoryManagerStore struct {
	data *memoryData
}

func (s *memoryManagerStore) GetByID(id uint) (*models.Manager, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	manager, ok := s.data.managers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &manager, nil
}

func (s *memoryManagerStore) FindActiveByEmail(email string) (*models.Manager, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, m := range s.data.managers {
		if m.Email == email && m.IsActive {
			manager := m
			return &manager, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryManagerStore) Create(manager *models.Manager) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for _, m := range s.data.managers {
		if m.Email == manager.Email {
			return ErrDuplicate
		}
	}
	manager.ID = s.data.nextMgr
	s.data.nextMgr++
	now := time.Now()
	if manager.CreatedAt.IsZero() {
		manager.CreatedAt = now
	}
	manager.UpdatedAt = now
	s.data.managers[manager.ID] = *manager
	return nil
}

func (s *memoryManagerStore) Count() (int64, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	return int64(len(s.data.managers)), nil
}

type memoryAccessLogStore struct {
	data *memoryData
}

func (s *memoryAccessLogStore) Append(entry *models.AccessLog) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	entry.ID = s.data.nextLog
	s.data.nextLog++
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	s.data.accessLogs = append(s.data.accessLogs, *entry)
	return nil
}

func (s *memoryAccessLogStore) ListByWorker(workerID uint, accessType string, limit int) ([]models.AccessLog, error) {
	return s.list(func(e models.AccessLog) bool {
		return e.WorkerID != nil && *e.WorkerID == workerID
	}, accessType, limit)
}

func (s *memoryAccessLogStore) ListByHost(hostID uint, accessType string, limit int) ([]models.AccessLog, error) {
	return s.list(func(e models.AccessLog) bool {
		return e.HostID != nil && *e.HostID == hostID
	}, accessType, limit)
}

func (s *memoryAccessLogStore) list(match func(models.AccessLog) bool, accessType string, limit int) ([]models.AccessLog, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	var entries []models.AccessLog
	for _, e := range s.data.accessLogs {
		if !match(e) {
			continue
		}
		if accessType != "" && e.AccessType != accessType {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *memoryAccessLogStore) CountSince(since time.Time) (int64, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	var count int64
	for _, e := range s.data.accessLogs {
		if !e.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *memoryAccessLogStore) CountSuccessfulSinceByType(since time.Time, accessType string) (int64, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	var count int64
	for _, e := range s.data.accessLogs {
		if !e.Timestamp.Before(since) && e.Success && e.AccessType == accessType {
			count++
		}
	}
	return count, nil
}
