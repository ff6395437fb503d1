package service

import (
	"nexus-hub-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service operations
type CompanyServiceInterface interface {
	Create(req *UpsertCompanyRequest) (*models.Company, error)
	Update(accountNumber string, req *UpsertCompanyRequest) (*models.Company, error)
	Patch(accountNumber string, patch *CompanyPatch) (*models.Company, error)
	GetByAccountNumber(accountNumber string) (*models.Company, error)
	GetByFreshserviceID(freshserviceID int64) (*models.Company, error)
	List(page, pageSize int) (*CompanyListResponse, error)
	Search(query, sortBy, order string, page, pageSize int) (*CompanyListResponse, error)
	ClientFeatures(accountNumber string) (map[string]ClientFeature, error)
}

// ContactServiceInterface defines the interface for contact service operations
type ContactServiceInterface interface {
	Create(req *UpsertContactRequest) (*ContactResponse, error)
	Update(id uint, req *UpsertContactRequest) (*ContactResponse, error)
	GetByID(id uint) (*ContactResponse, error)
	FindByEmail(email string) (*ContactResponse, error)
	List(sortBy, order string, page, pageSize int) (*ContactListResponse, error)
}

// LocationServiceInterface defines the interface for location service operations
type LocationServiceInterface interface {
	ListForCompany(accountNumber string) ([]models.Location, error)
	Create(accountNumber string, req *CreateLocationRequest) (*models.Location, error)
	Delete(accountNumber string, id uint) error
	UpsertMainOffice(accountNumber string, req *UpsertMainOfficeRequest) (*models.Location, error)
}

// BillingPlanServiceInterface defines the interface for billing plan service operations
type BillingPlanServiceInterface interface {
	List() ([]models.BillingPlan, error)
	Get(planName, termLength string) (*models.BillingPlan, error)
	PlanNames() ([]string, error)
	FeatureOptions(featureType string) ([]models.FeatureOption, error)
}

// FreshserviceServiceInterface defines the interface the sync CLI consumes
type FreshserviceServiceInterface interface {
	FetchAllCompanies() ([]FreshserviceCompany, error)
	FetchAllUsers() ([]FreshserviceUser, error)
}
