package repository

import (
	"fmt"
	"strings"

	"nexus-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

var contactSortColumns = map[string]bool{
	"name":   true,
	"email":  true,
	"active": true,
}

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact and associates it with the given companies.
// Account numbers that do not resolve to an existing company are ignored.
func (r *ContactRepository) Create(contact *models.Contact, accountNumbers []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contact).Error; err != nil {
			return err
		}
		return appendCompanies(tx, contact, accountNumbers)
	})
}

// GetByID retrieves a contact with its company associations
func (r *ContactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Companies").First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByEmail retrieves a contact by its primary email
func (r *ContactRepository) GetByEmail(email string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Companies").First(&contact, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByFreshserviceID retrieves a contact by its Freshservice back-reference
func (r *ContactRepository) GetByFreshserviceID(freshserviceID int64) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "freshservice_id = ?", freshserviceID).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetAll retrieves all contacts with sorting and pagination
func (r *ContactRepository) GetAll(sortBy, order string, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if !contactSortColumns[sortBy] {
		sortBy = "name"
	}
	direction := "asc"
	if strings.EqualFold(order, "desc") {
		direction = "desc"
	}

	err := r.db.Order(fmt.Sprintf("%s %s", sortBy, direction)).Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Update saves the contact's scalar fields without touching associations
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Omit("Companies").Save(contact).Error
}

// ReplaceCompanies sets the contact's company association set to exactly the
// given account numbers. Callers wanting additive-only merge must pass the
// union of existing and new associations.
func (r *ContactRepository) ReplaceCompanies(contact *models.Contact, accountNumbers []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(contact).Association("Companies").Clear(); err != nil {
			return err
		}
		return appendCompanies(tx, contact, accountNumbers)
	})
}

func appendCompanies(tx *gorm.DB, contact *models.Contact, accountNumbers []string) error {
	if len(accountNumbers) == 0 {
		return nil
	}
	var companies []models.Company
	if err := tx.Where("account_number IN ?", accountNumbers).Find(&companies).Error; err != nil {
		return err
	}
	if len(companies) == 0 {
		return nil
	}
	return tx.Model(contact).Association("Companies").Append(&companies)
}
