package services

import (
	"errors"
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

const dateLayout = "2006-01-02"

// HostUpdate carries the optional fields of a host update. Nil means
// "leave unchanged". Dates are YYYY-MM-DD strings.
type HostUpdate struct {
	Name            *string
	Phone           *string
	Pin             *string
	Location        *string
	AccessStartDate *string
	AccessEndDate   *string
	IsActive        *bool
}

// InterfaceHostService defines host management operations
type InterfaceHostService interface {
	GetAllHosts() ([]models.Host, error)
	GetHostByID(id uint) (*models.Host, error)
	CreateHost(name, phone, pin, location, accessStartDate, accessEndDate string) (*models.Host, error)
	UpdateHost(id uint, update HostUpdate) (*models.Host, error)
	DeleteHost(id uint) error
	SetHostStatus(id uint, active bool) (*models.Host, error)
}

// HostService manages visiting hosts and their access windows
type HostService struct {
	Stores *stores.Stores
}

// NewHostService creates a new host service
func NewHostService(s *stores.Stores) InterfaceHostService {
	return &HostService{Stores: s}
}

// GetAllHosts returns all hosts, newest first
func (s *HostService) GetAllHosts() ([]models.Host, error) {
	return s.Stores.Hosts.List()
}

// GetHostByID returns one host
func (s *HostService) GetHostByID(id uint) (*models.Host, error) {
	return s.Stores.Hosts.GetByID(id)
}

// CreateHost registers a new host with a unique phone and an access window.
// The window must not be inverted.
func (s *HostService) CreateHost(name, phone, pin, location, accessStartDate, accessEndDate string) (*models.Host, error) {
	name = utils.SanitizeInput(name)
	phone = utils.SanitizeInput(phone)
	pin = utils.SanitizeInput(pin)
	location = utils.SanitizeInput(location)

	if name == "" || location == "" {
		return nil, ErrMissingField
	}
	if !utils.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !utils.ValidatePIN(pin) {
		return nil, ErrInvalidPIN
	}

	start, err := parseDate(accessStartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(accessEndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidDate
	}

	taken, err := s.Stores.Hosts.ExistsPhone(phone, 0)
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

	host := &models.Host{
		Name:            name,
		Phone:           phone,
		PinHash:         pinHash,
		Location:        location,
		AccessStartDate: start,
		AccessEndDate:   end,
		IsActive:        true,
	}
	if err := s.Stores.Hosts.Create(host); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, ErrPhoneInUse
		}
		return nil, err
	}
	return host, nil
}

// UpdateHost applies the present fields of update to a host
func (s *HostService) UpdateHost(id uint, update HostUpdate) (*models.Host, error) {
	current, err := s.Stores.Hosts.GetByID(id)
	if err != nil {
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
		taken, err := s.Stores.Hosts.ExistsPhone(phone, id)
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
	if update.Location != nil {
		location := utils.SanitizeInput(*update.Location)
		if location == "" {
			return nil, ErrMissingField
		}
		columns["location"] = location
	}

	// window edits are validated against the resulting pair, not each bound alone
	start := current.AccessStartDate
	end := current.AccessEndDate
	if update.AccessStartDate != nil {
		start, err = parseDate(*update.AccessStartDate)
		if err != nil {
			return nil, err
		}
		columns["access_start_date"] = start
	}
	if update.AccessEndDate != nil {
		end, err = parseDate(*update.AccessEndDate)
		if err != nil {
			return nil, err
		}
		columns["access_end_date"] = end
	}
	if end.Before(start) {
		return nil, ErrInvalidDate
	}

	if update.IsActive != nil {
		columns["is_active"] = *update.IsActive
	}

	if len(columns) == 0 {
		return current, nil
	}

	host, err := s.Stores.Hosts.Update(id, columns)
	if err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, ErrPhoneInUse
		}
		return nil, err
	}
	return host, nil
}

// DeleteHost removes a host; their access log rows go with them
func (s *HostService) DeleteHost(id uint) error {
	return s.Stores.Hosts.Delete(id)
}

// SetHostStatus activates or deactivates a host
func (s *HostService) SetHostStatus(id uint, active bool) (*models.Host, error) {
	if _, err := s.Stores.Hosts.GetByID(id); err != nil {
		return nil, err
	}
	return s.Stores.Hosts.Update(id, map[string]interface{}{"is_active": active})
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, utils.SanitizeInput(value), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
