package stores

import (
	"time"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/pkg/utils"
)

// SeedSampleData loads the bundled sample dataset into an empty store bundle.
// The MySQL adapter gets it on first boot; the in-memory adapter gets it when
// the process starts in degraded mode so read endpoints still answer.
func SeedSampleData(s *Stores, managerPassword string) error {
	count, err := s.Managers.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pin1234, err := utils.HashSecret("1234")
	if err != nil {
		return err
	}
	pin9876, err := utils.HashSecret("9876")
	if err != nil {
		return err
	}
	pin5678, err := utils.HashSecret("5678")
	if err != nil {
		return err
	}
	passwordHash, err := utils.HashSecret(managerPassword)
	if err != nil {
		return err
	}

	workers := []models.Worker{
		{Name: "Jean Dupont", Phone: "0612345678", PinHash: pin1234, Department: "IT", IsActive: true},
		{Name: "Pierre Durand", Phone: "0698765432", PinHash: pin9876, Department: "Marketing", IsActive: true},
	}
	for i := range workers {
		if err := s.Workers.Create(&workers[i]); err != nil {
			return err
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	host := models.Host{
		Name:            "Marie Visiteur",
		Phone:           "0687654321",
		PinHash:         pin5678,
		Location:        "Salle de réunion A",
		AccessStartDate: today,
		AccessEndDate:   today.AddDate(0, 0, 7),
		IsActive:        true,
	}
	if err := s.Hosts.Create(&host); err != nil {
		return err
	}

	manager := models.Manager{
		Name:         "Responsable Manager",
		Email:        "manager@entreprise.com",
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	return s.Managers.Create(&manager)
}
