package repository

import (
	"fmt"
	"strings"

	"nexus-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

// companySortColumns is the allow-list for the search endpoint's sort_by.
var companySortColumns = map[string]bool{
	"name":              true,
	"account_number":    true,
	"plan_selected":     true,
	"email_system":      true,
	"phone_system":      true,
	"contract_end_date": true,
}

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByAccountNumber retrieves a company by its account number
func (r *CompanyRepository) GetByAccountNumber(accountNumber string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "account_number = ?", accountNumber).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByFreshserviceID retrieves a company by its Freshservice back-reference
func (r *CompanyRepository) GetByFreshserviceID(freshserviceID int64) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "freshservice_id = ?", freshserviceID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies with pagination
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("account_number").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Search retrieves companies matching the query with sorting and pagination.
// The query matches name, account number and description case-insensitively.
func (r *CompanyRepository) Search(query, sortBy, order string, limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	tx := r.db.Model(&models.Company{})
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR account_number ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if !companySortColumns[sortBy] {
		sortBy = "name"
	}
	direction := "asc"
	if strings.EqualFold(order, "desc") {
		direction = "desc"
	}

	err := tx.Order(fmt.Sprintf("%s %s", sortBy, direction)).Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update saves the full company record
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// UpdateFields applies a column-level patch to a company
func (r *CompanyRepository) UpdateFields(accountNumber string, updates map[string]interface{}) error {
	return r.db.Model(&models.Company{}).Where("account_number = ?", accountNumber).Updates(updates).Error
}

// GetWithLocations retrieves a company with its locations
func (r *CompanyRepository) GetWithLocations(accountNumber string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Locations").First(&company, "account_number = ?", accountNumber).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetWithFeatureOverrides retrieves a company with its feature overrides
func (r *CompanyRepository) GetWithFeatureOverrides(accountNumber string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("FeatureOverrides").First(&company, "account_number = ?", accountNumber).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}
