package service

import (
	"errors"
	"fmt"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/repository"

	"gorm.io/gorm"
)

// BillingPlanService handles read access to billing plans and feature options
type BillingPlanService struct {
	repo repository.BillingPlanRepositoryInterface
}

// NewBillingPlanService creates a new billing plan service
func NewBillingPlanService(repo repository.BillingPlanRepositoryInterface) *BillingPlanService {
	return &BillingPlanService{repo: repo}
}

// List retrieves all billing plans
func (s *BillingPlanService) List() ([]models.BillingPlan, error) {
	plans, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list billing plans: %w", err)
	}
	return plans, nil
}

// Get retrieves a plan by name and term length
func (s *BillingPlanService) Get(planName, termLength string) (*models.BillingPlan, error) {
	plan, err := s.repo.GetByPlanAndTerm(planName, termLength)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillingPlanNotFound
		}
		return nil, fmt.Errorf("failed to get billing plan: %w", err)
	}
	return plan, nil
}

// PlanNames retrieves the distinct plan names for dropdowns
func (s *BillingPlanService) PlanNames() ([]string, error) {
	names, err := s.repo.GetPlanNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list plan names: %w", err)
	}
	return names, nil
}

// FeatureOptions retrieves the dropdown options for a feature type
func (s *BillingPlanService) FeatureOptions(featureType string) ([]models.FeatureOption, error) {
	options, err := s.repo.GetFeatureOptions(featureType)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature options: %w", err)
	}
	return options, nil
}
