package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo        repository.CompanyRepositoryInterface
	contactRepo repository.ContactRepositoryInterface
	planRepo    repository.BillingPlanRepositoryInterface
	validator   *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, contactRepo repository.ContactRepositoryInterface, planRepo repository.BillingPlanRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:        repo,
		contactRepo: contactRepo,
		planRepo:    planRepo,
		validator:   validator,
	}
}

// UpsertCompanyRequest is the field set sync writes on create and update.
// Updates overwrite all of these fields wholesale; there is no partial merge
// on the denormalized company fields.
type UpsertCompanyRequest struct {
	AccountNumber      string   `json:"account_number" validate:"required,max=50"`
	Name               string   `json:"name" validate:"required,max=150"`
	FreshserviceID     *int64   `json:"freshservice_id"`
	Description        string   `json:"description,omitempty"`
	PlanSelected       string   `json:"plan_selected,omitempty"`
	ProfitOrNonProfit  string   `json:"profit_or_non_profit,omitempty"`
	CompanyMainNumber  string   `json:"company_main_number,omitempty"`
	CompanyStartDate   string   `json:"company_start_date,omitempty"`
	HeadName           string   `json:"head_name,omitempty"`
	PrimaryContactName string   `json:"primary_contact_name,omitempty"`
	Domains            []string `json:"domains,omitempty"`
	Address            string   `json:"address,omitempty"`
}

// CompanyPatch is the allow-listed partial update for the portal's edit view.
// Nil fields are left untouched; each non-nil field is applied through the
// fixed dispatch table in apply, never through reflection.
type CompanyPatch struct {
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
	BillingPlan        *string `json:"billing_plan,omitempty"`
	SupportLevel       *string `json:"support_level,omitempty"`
	EmailSystem        *string `json:"email_system,omitempty"`
	PhoneSystem        *string `json:"phone_system,omitempty"`
	ContractTermLength *string `json:"contract_term_length,omitempty"`
	ManagedUsers       *int    `json:"managed_users,omitempty"`
	ManagedDevices     *int    `json:"managed_devices,omitempty"`
	ManagedNetwork     *bool   `json:"managed_network,omitempty"`
	CompanyMainNumber  *string `json:"company_main_number,omitempty"`
	Address            *string `json:"address,omitempty"`
	DattoPortalURL     *string `json:"datto_portal_url,omitempty"`
	Domains            *string `json:"domains,omitempty"`
	HeadUserID         *int64  `json:"head_user_id,omitempty"`
	PrimeUserID        *int64  `json:"prime_user_id,omitempty"`
	CompanyStartDate   *string `json:"company_start_date,omitempty"`
	ContractStartDate  *string `json:"contract_start_date,omitempty"`
	ContractEndDate    *string `json:"contract_end_date,omitempty"`
}

// apply copies every set field onto the company. This is the single place
// that decides which columns the patch endpoint may touch; fields absent
// from the struct cannot be updated through it.
func (p *CompanyPatch) apply(company *models.Company) {
	if p.Name != nil {
		company.Name = *p.Name
	}
	if p.Description != nil {
		company.Description = *p.Description
	}
	if p.BillingPlan != nil {
		company.BillingPlan = *p.BillingPlan
	}
	if p.SupportLevel != nil {
		company.SupportLevel = *p.SupportLevel
	}
	if p.EmailSystem != nil {
		company.EmailSystem = *p.EmailSystem
	}
	if p.PhoneSystem != nil {
		company.PhoneSystem = *p.PhoneSystem
	}
	if p.ContractTermLength != nil {
		company.ContractTermLength = *p.ContractTermLength
	}
	if p.ManagedUsers != nil {
		company.ManagedUsers = p.ManagedUsers
	}
	if p.ManagedDevices != nil {
		company.ManagedDevices = p.ManagedDevices
	}
	if p.ManagedNetwork != nil {
		company.ManagedNetwork = p.ManagedNetwork
	}
	if p.CompanyMainNumber != nil {
		company.CompanyMainNumber = *p.CompanyMainNumber
	}
	if p.Address != nil {
		company.Address = *p.Address
	}
	if p.DattoPortalURL != nil {
		company.DattoPortalURL = *p.DattoPortalURL
	}
	if p.Domains != nil {
		company.Domains = json.RawMessage(*p.Domains)
	}
	if p.HeadUserID != nil {
		company.HeadUserID = p.HeadUserID
	}
	if p.PrimeUserID != nil {
		company.PrimeUserID = p.PrimeUserID
	}
	if p.CompanyStartDate != nil {
		company.CompanyStartDate = *p.CompanyStartDate
	}
	if p.ContractStartDate != nil {
		company.ContractStartDate = *p.ContractStartDate
	}
	if p.ContractEndDate != nil {
		company.ContractEndDate = *p.ContractEndDate
	}
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []models.Company `json:"companies"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

// ClientFeature is one merged feature value on the company detail view
type ClientFeature struct {
	Value      string `json:"value"`
	IsOverride bool   `json:"is_override"`
}

// Create creates a new company from the sync field set
func (s *CompanyService) Create(req *UpsertCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByAccountNumber(req.AccountNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{AccountNumber: req.AccountNumber}
	applyUpsert(company, req)

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// Update overwrites the denormalized fields of an existing company
func (s *CompanyService) Update(accountNumber string, req *UpsertCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.AccountNumber != accountNumber {
		return nil, apperrors.ErrAccountNumberMismatch
	}

	company, err := s.repo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	applyUpsert(company, req)

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}

func applyUpsert(company *models.Company, req *UpsertCompanyRequest) {
	company.Name = req.Name
	company.FreshserviceID = req.FreshserviceID
	company.Description = req.Description
	company.PlanSelected = req.PlanSelected
	company.ProfitOrNonProfit = req.ProfitOrNonProfit
	company.CompanyMainNumber = req.CompanyMainNumber
	company.CompanyStartDate = req.CompanyStartDate
	company.HeadName = req.HeadName
	company.PrimaryContactName = req.PrimaryContactName
	company.Address = req.Address

	if req.Domains != nil {
		if raw, err := json.Marshal(req.Domains); err == nil {
			company.Domains = raw
		}
	} else {
		company.Domains = json.RawMessage("[]")
	}
}

// GetByAccountNumber retrieves a company
func (s *CompanyService) GetByAccountNumber(accountNumber string) (*models.Company, error) {
	company, err := s.repo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// GetByFreshserviceID retrieves a company by its external back-reference
func (s *CompanyService) GetByFreshserviceID(freshserviceID int64) (*models.Company, error) {
	company, err := s.repo.GetByFreshserviceID(freshserviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// List retrieves companies with pagination
func (s *CompanyService) List(page, pageSize int) (*CompanyListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	companies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return &CompanyListResponse{
		Companies: companies,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Search retrieves companies matching a free-text query with sorting
func (s *CompanyService) Search(query, sortBy, order string, page, pageSize int) (*CompanyListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	companies, total, err := s.repo.Search(query, sortBy, order, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	return &CompanyListResponse{
		Companies: companies,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Patch applies an allow-listed partial update. When the head or prime user
// id changes, the corresponding denormalized name is re-derived from the
// contact with that Freshservice id.
func (s *CompanyService) Patch(accountNumber string, patch *CompanyPatch) (*models.Company, error) {
	company, err := s.repo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	patch.apply(company)

	if patch.HeadUserID != nil {
		if name, err := s.contactNameByFreshserviceID(*patch.HeadUserID); err != nil {
			return nil, err
		} else if name != "" {
			company.HeadName = name
		}
	}
	if patch.PrimeUserID != nil {
		if name, err := s.contactNameByFreshserviceID(*patch.PrimeUserID); err != nil {
			return nil, err
		} else if name != "" {
			company.PrimaryContactName = name
		}
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to patch company: %w", err)
	}

	return company, nil
}

func (s *CompanyService) contactNameByFreshserviceID(id int64) (string, error) {
	contact, err := s.contactRepo.GetByFreshserviceID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up contact %d: %w", id, err)
	}
	return contact.Name, nil
}

// ClientFeatures merges the company's billing-plan feature defaults with its
// enabled overrides, keyed by display name.
func (s *CompanyService) ClientFeatures(accountNumber string) (map[string]ClientFeature, error) {
	company, err := s.repo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	planName := company.BillingPlan
	if planName == "" {
		planName = company.PlanSelected
	}
	if planName == "" {
		return map[string]ClientFeature{}, nil
	}
	term := company.ContractTermLength
	if term == "" {
		term = "Month to Month"
	}

	plan, err := s.planRepo.GetByPlanAndTerm(planName, term)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]ClientFeature{}, nil
		}
		return nil, fmt.Errorf("failed to get billing plan: %w", err)
	}

	overrides, err := s.planRepo.GetOverridesForCompany(accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get feature overrides: %w", err)
	}
	enabled := make(map[string]string, len(overrides))
	for _, override := range overrides {
		if override.OverrideEnabled {
			enabled[override.FeatureKey] = override.Value
		}
	}

	features := make(map[string]ClientFeature, len(models.FeatureKeys))
	for key, displayName := range models.FeatureKeys {
		if value, ok := enabled[key]; ok {
			features[displayName] = ClientFeature{Value: value, IsOverride: true}
			continue
		}
		value, _ := plan.FeatureDefault(key)
		features[displayName] = ClientFeature{Value: value, IsOverride: false}
	}

	return features, nil
}
