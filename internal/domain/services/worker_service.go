package services

import (
	"errors"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

// WorkerUpdate carries the optional fields of a worker update. Nil means
// "leave unchanged".
type WorkerUpdate struct {
	Name       *string
	Phone      *string
	Pin        *string
	Department *string
	IsActive   *bool
}

// InterfaceWorkerService defines worker management operations
type InterfaceWorkerService interface {
	GetAllWorkers() ([]models.Worker, error)
	GetWorkerByID(id uint) (*models.Worker, error)
	CreateWorker(name, phone, pin, department string) (*models.Worker, error)
	UpdateWorker(id uint, update WorkerUpdate) (*models.Worker, error)
	DeleteWorker(id uint) error
	SetWorkerStatus(id uint, active bool) (*models.Worker, error)
}

// WorkerService manages the worker roster. All writes sanitize and
// shape-validate input before touching the store, and the PIN is bcrypt
// hashed before it leaves this layer.
type WorkerService struct {
	Stores *stores.Stores
}

// NewWorkerService creates a new worker service
func NewWorkerService(s *stores.Stores) InterfaceWorkerService {
	return &WorkerService{Stores: s}
}

// GetAllWorkers returns all workers, newest first
func (s *WorkerService) GetAllWorkers() ([]models.Worker, error) {
	return s.Stores.Workers.List()
}

// GetWorkerByID returns one worker
func (s *WorkerService) GetWorkerByID(id uint) (*models.Worker, error) {
	return s.Stores.Workers.GetByID(id)
}

// CreateWorker registers a new worker with a unique phone
func (s *WorkerService) CreateWorker(name, phone, pin, department string) (*models.Worker, error) {
	name = utils.SanitizeInput(name)
	phone = utils.SanitizeInput(phone)
	pin = utils.SanitizeInput(pin)
	department = utils.SanitizeInput(department)

	if name == "" || department == "" {
		return nil, ErrMissingField
	}
	if !utils.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !utils.ValidatePIN(pin) {
		return nil, ErrInvalidPIN
	}

	taken, err := s.Stores.Workers.ExistsPhone(phone, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneInUse
	}

	pinHash, err := utils.HashSecret(pin)
	if err != nil {
		return nil, err
	}

	worker := &models.Worker{
		Name:       name,
		Phone:      phone,
		PinHash:    pinHash,
		Department: department,
		IsActive:   true,
	}
	if err := s.Stores.Workers.Create(worker); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, ErrPhoneInUse
		}
		return nil, err
	}
	return worker, nil
}

// UpdateWorker applies the present fields of update to a worker
func (s *WorkerService) UpdateWorker(id uint, update WorkerUpdate) (*models.Worker, error) {
	if _, err := s.Stores.Workers.GetByID(id); err != nil {
		return nil, err
	}

	columns := map[string]interface{}{}

	if update.Name != nil {
		name := utils.SanitizeInput(*update.Name)
		if name == "" {
			return nil, ErrMissingField
		}
		columns["name"] = name
	}
	if update.Phone != nil {
		phone := utils.SanitizeInput(*update.Phone)
		if !utils.ValidatePhone(phone) {
			return nil, ErrInvalidPhone
		}
		taken, err := s.Stores.Workers.ExistsPhone(phone, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneInUse
		}
		columns["phone"] = phone
	}
	if update.Pin != nil {
		pin := utils.SanitizeInput(*update.Pin)
		if !utils.ValidatePIN(pin) {
			return nil, ErrInvalidPIN
		}
		pinHash, err := utils.HashSecret(pin)
		if err != nil {
			return nil, err
		}
		columns["pin_hash"] = pinHash
	}
	if update.Department != nil {
		department := utils.SanitizeInput(*update.Department)
		if department == "" {
			return nil, ErrMissingField
		}
		columns["department"] = department
	}
	if update.IsActive != nil {
		columns["is_active"] = *update.IsActive
	}

	if len(columns) == 0 {
		return s.Stores.Workers.GetByID(id)
	}

	worker, err := s.Stores.Workers.Update(id, columns)
	if err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, ErrPhoneInUse
		}
		return nil, err
	}
	return worker, nil
}

// DeleteWorker removes a worker; their access log rows go with them
func (s *WorkerService) DeleteWorker(id uint) error {
	return s.Stores.Workers.Delete(id)
}

// SetWorkerStatus activates or deactivates a worker. A deactivated worker
// can no longer log in or generate QR codes, but keeps their history.
func (s *WorkerService) SetWorkerStatus(id uint, active bool) (*models.Worker, error) {
	if _, err := s.Stores.Workers.GetByID(id); err != nil {
		return nil, err
	}
	return s.Stores.Workers.Update(id, map[string]interface{}{"is_active": active})
}
