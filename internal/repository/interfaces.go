package repository

import (
	"nexus-hub-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByAccountNumber(accountNumber string) (*models.Company, error)
	GetByFreshserviceID(freshserviceID int64) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Search(query, sortBy, order string, limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	UpdateFields(accountNumber string, updates map[string]interface{}) error
	GetWithLocations(accountNumber string) (*models.Company, error)
	GetWithFeatureOverrides(accountNumber string) (*models.Company, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact, accountNumbers []string) error
	GetByID(id uint) (*models.Contact, error)
	GetByEmail(email string) (*models.Contact, error)
	GetByFreshserviceID(freshserviceID int64) (*models.Contact, error)
	GetAll(sortBy, order string, limit, offset int) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	ReplaceCompanies(contact *models.Contact, accountNumbers []string) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uint) (*models.Location, error)
	GetByCompany(accountNumber string) ([]models.Location, error)
	GetByCompanyAndName(accountNumber, name string) (*models.Location, error)
	Update(location *models.Location) error
	Delete(id uint) error
	UpsertMainOffice(accountNumber, address, phone string) (*models.Location, error)
}

// BillingPlanRepositoryInterface defines the interface for billing plan repository operations
type BillingPlanRepositoryInterface interface {
	Create(plan *models.BillingPlan) error
	GetByPlanAndTerm(planName, termLength string) (*models.BillingPlan, error)
	GetAll() ([]models.BillingPlan, error)
	GetPlanNames() ([]string, error)
	GetOverridesForCompany(accountNumber string) ([]models.CompanyFeatureOverride, error)
	GetFeatureOptions(featureType string) ([]models.FeatureOption, error)
}

// UserRepositoryInterface defines the interface for API user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByAPIKey(apiKey string) (*models.User, error)
	Update(user *models.User) error
}
