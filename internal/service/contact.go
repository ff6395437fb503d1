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

// ContactService handles business logic for contacts
type ContactService struct {
	repo      repository.ContactRepositoryInterface
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:      repo,
		validator: validator,
	}
}

// UpsertContactRequest is the field set written on contact create and update.
// CompanyAccountNumbers is the full association set the caller wants stored;
// sync callers pass the union of existing and newly resolved associations so
// the stored set only ever grows.
type UpsertContactRequest struct {
	Name                  string   `json:"name" validate:"required,max=150"`
	Email                 string   `json:"email" validate:"required,email,max=150"`
	Title                 string   `json:"title,omitempty"`
	Active                *bool    `json:"active,omitempty"`
	MobilePhoneNumber     string   `json:"mobile_phone_number,omitempty"`
	WorkPhoneNumber       string   `json:"work_phone_number,omitempty"`
	SecondaryEmails       []string `json:"secondary_emails,omitempty"`
	FreshserviceID        *int64   `json:"freshservice_id,omitempty"`
	CompanyAccountNumbers []string `json:"company_account_numbers,omitempty"`
}

// ContactResponse represents a contact with its association set flattened
type ContactResponse struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	Title                 string   `json:"title"`
	Active                *bool    `json:"active"`
	MobilePhoneNumber     string   `json:"mobile_phone_number"`
	WorkPhoneNumber       string   `json:"work_phone_number"`
	SecondaryEmails       []string `json:"secondary_emails"`
	FreshserviceID        *int64   `json:"freshservice_id"`
	CompanyAccountNumbers []string `json:"company_account_numbers"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new contact with its initial association set
func (s *ContactService) Create(req *UpsertContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing contact: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrContactExists
	}

	contact := &models.Contact{Email: req.Email}
	applyContactFields(contact, req)

	if err := s.repo.Create(contact, req.CompanyAccountNumbers); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	created, err := s.repo.GetByID(contact.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload contact: %w", err)
	}
	return toContactResponse(created), nil
}

// Update overwrites a contact's scalar fields and replaces its association
// set with exactly the set in the request. Additive merge semantics are the
// caller's responsibility: sync passes the union of old and new sets.
func (s *ContactService) Update(id uint, req *UpsertContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.Email = req.Email
	applyContactFields(contact, req)

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	if req.CompanyAccountNumbers != nil {
		if err := s.repo.ReplaceCompanies(contact, req.CompanyAccountNumbers); err != nil {
			return nil, fmt.Errorf("failed to update contact companies: %w", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload contact: %w", err)
	}
	return toContactResponse(updated), nil
}

func applyContactFields(contact *models.Contact, req *UpsertContactRequest) {
	contact.Name = req.Name
	contact.Title = req.Title
	contact.Active = req.Active
	contact.MobilePhoneNumber = req.MobilePhoneNumber
	contact.WorkPhoneNumber = req.WorkPhoneNumber
	contact.FreshserviceID = req.FreshserviceID

	if req.SecondaryEmails != nil {
		if raw, err := json.Marshal(req.SecondaryEmails); err == nil {
			contact.SecondaryEmails = raw
		}
	} else {
		contact.SecondaryEmails = json.RawMessage("[]")
	}
}

// GetByID retrieves a contact with its associations
func (s *ContactService) GetByID(id uint) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return toContactResponse(contact), nil
}

// FindByEmail retrieves a contact by primary email. A missing contact is not
// an error: the sync flow probes by email before deciding create vs update.
func (s *ContactService) FindByEmail(email string) (*ContactResponse, error) {
	contact, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return toContactResponse(contact), nil
}

// List retrieves contacts with sorting and pagination
func (s *ContactService) List(sortBy, order string, page, pageSize int) (*ContactListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	contacts, total, err := s.repo.GetAll(sortBy, order, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, *toContactResponse(&contacts[i]))
	}

	return &ContactListResponse{
		Contacts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toContactResponse(contact *models.Contact) *ContactResponse {
	var secondary []string
	if len(contact.SecondaryEmails) > 0 {
		// Stored as a JSON array; a decode failure just yields an empty list
		_ = json.Unmarshal(contact.SecondaryEmails, &secondary)
	}
	if secondary == nil {
		secondary = []string{}
	}

	return &ContactResponse{
		ID:                    contact.ID,
		Name:                  contact.Name,
		Email:                 contact.Email,
		Title:                 contact.Title,
		Active:                contact.Active,
		MobilePhoneNumber:     contact.MobilePhoneNumber,
		WorkPhoneNumber:       contact.WorkPhoneNumber,
		SecondaryEmails:       secondary,
		FreshserviceID:        contact.FreshserviceID,
		CompanyAccountNumbers: contact.CompanyAccountNumbers(),
	}
}
