package stores

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
)

// NewGormStores builds the MySQL-backed store bundle
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Workers:    &gormWorkerStore{db: db},
		Hosts:      &gormHostStore{db: db},
		Managers:   &gormManagerStore{db: db},
		AccessLogs: &gormAccessLogStore{db: db},
	}
}

func translateGormError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDuplicate
	}
	return err
}

type gormWorkerStore struct {
	db *gorm.DB
}

func (s *gormWorkerStore) List() ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.db.Order("created_at DESC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (s *gormWorkerStore) GetByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := s.db.First(&worker, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &worker, nil
}

func (s *gormWorkerStore) FindActiveByPhone(phone string) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.Where("phone = ? AND is_active = ?", phone, true).First(&worker).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &worker, nil
}

func (s *gormWorkerStore) ExistsPhone(phone string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Worker{}).Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormWorkerStore) Create(worker *models.Worker) error {
	return translateGormError(s.db.Create(worker).Error)
}

func (s *gormWorkerStore) Update(id uint, updates map[string]interface{}) (*models.Worker, error) {
	worker, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(worker).Updates(updates).Error; err != nil {
		return nil, translateGormError(err)
	}
	return s.GetByID(id)
}

func (s *gormWorkerStore) Delete(id uint) error {
	result := s.db.Delete(&models.Worker{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormWorkerStore) TouchLastAccess(id uint, at time.Time) error {
	return s.db.Model(&models.Worker{}).Where("id = ?", id).
		Update("last_access", at).Error
}

func (s *gormWorkerStore) CountActive() (int64, error) {
	var count int64
	err := s.db.Model(&models.Worker{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

type gormHostStore struct {
	db *gorm.DB
}

func (s *gormHostStore) List() ([]models.Host, error) {
	var hosts []models.Host
	if err := s.db.Order("created_at DESC").Find(&hosts).Error; err != nil {
		return nil, err
	}
	return hosts, nil
}

func (s *gormHostStore) GetByID(id uint) (*models.Host, error) {
	var host models.Host
	if err := s.db.First(&host, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &host, nil
}

func (s *gormHostStore) FindActiveByPhone(phone string) (*models.Host, error) {
	var host models.Host
	err := s.db.Where("phone = ? AND is_active = ?", phone, true).First(&host).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &host, nil
}

func (s *gormHostStore) ExistsPhone(phone string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Host{}).Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormHostStore) Create(host *models.Host) error {
	return translateGormError(s.db.Create(host).Error)
}

func (s *gormHostStore) Update(id uint, updates map[string]interface{}) (*models.Host, error) {
	host, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(host).Updates(updates).Error; err != nil {
		return nil, translateGormError(err)
	}
	return s.GetByID(id)
}

func (s *gormHostStore) Delete(id uint) error {
	result := s.db.Delete(&models.Host{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormHostStore) CountActive() (int64, error) {
	var count int64
	err := s.db.Model(&models.Host{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

type gormManagerStore struct {
	db *gorm.DB
}

func (s *gormManagerStore) GetByID(id uint) (*models.Manager, error) {
	var manager models.Manager
	if err := s.db.First(&manager, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &manager, nil
}

func (s *gormManagerStore) FindActiveByEmail(email string) (*models.Manager, error) {
	var manager models.Manager
	err := s.db.Where("email = ? AND is_active = ?", email, true).First(&manager).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &manager, nil
}

func (s *gormManagerStore) Create(manager *models.Manager) error {
	return translateGormError(s.db.Create(manager).Error)
}

func (s *gormManagerStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Manager{}).Count(&count).Error
	return count, err
}

type gormAccessLogStore struct {
	db *gorm.DB
}

func (s *gormAccessLogStore) Append(entry *models.AccessLog) error {
	return translateGormError(s.db.Create(entry).Error)
}

func (s *gormAccessLogStore) ListByWorker(workerID uint, accessType string, limit int) ([]models.AccessLog, error) {
	return s.list("worker_id = ?", workerID, accessType, limit)
}

func (s *gormAccessLogStore) ListByHost(hostID uint, accessType string, limit int) ([]models.AccessLog, error) {
	return s.list("host_id = ?", hostID, accessType, limit)
}

func (s *gormAccessLogStore) list(actorCond string, actorID uint, accessType string, limit int) ([]models.AccessLog, error) {
	var entries []models.AccessLog
	query := s.db.Where(actorCond, actorID)
	if accessType != "" {
		query = query.Where("access_type = ?", accessType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("timestamp DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *gormAccessLogStore) CountSince(since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.AccessLog{}).Where("timestamp >= ?", since).Count(&count).Error
	return count, err
}

func (s *gormAccessLogStore) CountSuccessfulSinceByType(since time.Time, accessType string) (int64, error) {
	var count int64
	err := s.db.Model(&models.AccessLog{}).
		Where("timestamp >= ? AND access_type = ? AND success = ?", since, accessType, true).
		Count(&count).Error
	return count, err
}
