package repository

import (
	"errors"

	"nexus-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByCompany retrieves all locations for a company
func (r *LocationRepository) GetByCompany(accountNumber string) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("company_account_number = ?", accountNumber).Order("name").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByCompanyAndName retrieves a single location by company and name
func (r *LocationRepository) GetByCompanyAndName(accountNumber, name string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "company_account_number = ? AND name = ?", accountNumber, name).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Update saves a location
func (r *LocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Delete deletes a location
func (r *LocationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Location{}, "id = ?", id).Error
}

// UpsertMainOffice ensures exactly one "Main Office" location exists for the
// company, creating it when absent and overwriting address and phone when
// present. The whole operation runs in one transaction.
func (r *LocationRepository) UpsertMainOffice(accountNumber, address, phone string) (*models.Location, error) {
	var location models.Location
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&location, "company_account_number = ? AND name = ?", accountNumber, models.MainOfficeName).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			location = models.Location{
				Name:                 models.MainOfficeName,
				CompanyAccountNumber: accountNumber,
			}
		} else if err != nil {
			return err
		}
		location.Address = address
		location.PhoneNumber = phone
		return tx.Save(&location).Error
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}
