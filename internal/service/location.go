package service

import (
	"errors"
	"fmt"

	"nexus-hub-backend/internal/database/models"
	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LocationService handles business logic for company locations
type LocationService struct {
	repo        repository.LocationRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateLocationRequest represents the request to add a location to a company
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Address     string `json:"address" validate:"required,max=300"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpsertMainOfficeRequest carries the address data sync pushes for a company
type UpsertMainOfficeRequest struct {
	Address     string `json:"address" validate:"required,max=300"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ListForCompany retrieves all locations of a company
func (s *LocationService) ListForCompany(accountNumber string) ([]models.Location, error) {
	if _, err := s.companyRepo.GetByAccountNumber(accountNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	locations, err := s.repo.GetByCompany(accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// Create adds a location to a company
func (s *LocationService) Create(accountNumber string, req *CreateLocationRequest) (*models.Location, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByAccountNumber(accountNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	location := &models.Location{
		Name:                 req.Name,
		Address:              req.Address,
		PhoneNumber:          req.PhoneNumber,
		CompanyAccountNumber: accountNumber,
	}

	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// Delete removes a location belonging to the given company
func (s *LocationService) Delete(accountNumber string, id uint) error {
	location, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}
	if location.CompanyAccountNumber != accountNumber {
		return apperrors.ErrLocationNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// UpsertMainOffice ensures the company's single "Main Office" location holds
// the given address and phone, creating it when absent.
func (s *LocationService) UpsertMainOffice(accountNumber string, req *UpsertMainOfficeRequest) (*models.Location, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByAccountNumber(accountNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	location, err := s.repo.UpsertMainOffice(accountNumber, req.Address, req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert main office: %w", err)
	}
	return location, nil
}
