package repository

import (
	"nexus-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

// BillingPlanRepository handles database operations for billing plans and features
type BillingPlanRepository struct {
	db *gorm.DB
}

// NewBillingPlanRepository creates a new billing plan repository
func NewBillingPlanRepository(db *gorm.DB) *BillingPlanRepository {
	return &BillingPlanRepository{db: db}
}

// Create creates a new billing plan
func (r *BillingPlanRepository) Create(plan *models.BillingPlan) error {
	return r.db.Create(plan).Error
}

// GetByPlanAndTerm retrieves a plan by name and term length
func (r *BillingPlanRepository) GetByPlanAndTerm(planName, termLength string) (*models.BillingPlan, error) {
	var plan models.BillingPlan
	err := r.db.First(&plan, "plan_name = ? AND term_length = ?", planName, termLength).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves all billing plans ordered by name and term
func (r *BillingPlanRepository) GetAll() ([]models.BillingPlan, error) {
	var plans []models.BillingPlan
	err := r.db.Order("plan_name, term_length").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlanNames retrieves the distinct plan names
func (r *BillingPlanRepository) GetPlanNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.BillingPlan{}).Distinct("plan_name").Order("plan_name").Pluck("plan_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GetOverridesForCompany retrieves a company's feature overrides
func (r *BillingPlanRepository) GetOverridesForCompany(accountNumber string) ([]models.CompanyFeatureOverride, error) {
	var overrides []models.CompanyFeatureOverride
	err := r.db.Where("company_account_number = ?", accountNumber).Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// GetFeatureOptions retrieves the dropdown options for a feature type
func (r *BillingPlanRepository) GetFeatureOptions(featureType string) ([]models.FeatureOption, error) {
	var options []models.FeatureOption
	err := r.db.Where("feature_type = ?", featureType).Order("display_name").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
