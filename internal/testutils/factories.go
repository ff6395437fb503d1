package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"nexus-hub-backend/internal/database/models"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	fsID := int64(1001)
	return &models.Company{
		AccountNumber:  "ACC100",
		Name:           "Acme Corporation",
		Description:    "A test company",
		FreshserviceID: &fsID,
		PlanSelected:   "Professional",
		Domains:        json.RawMessage(`["acme.com"]`),
		Address:        "1 Main Street, Springfield",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// WithAccountNumber sets a custom account number and a matching external id
func (f *CompanyFactory) WithAccountNumber(accountNumber string, freshserviceID int64) *models.Company {
	company := f.Create()
	company.AccountNumber = accountNumber
	company.Name = "Company " + accountNumber
	company.FreshserviceID = &freshserviceID
	return company
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create() *models.Contact {
	fsID := int64(5001)
	active := true
	return &models.Contact{
		Name:            "Alice Example",
		Email:           "alice@acme.com",
		Title:           "Office Manager",
		Active:          &active,
		FreshserviceID:  &fsID,
		SecondaryEmails: json.RawMessage(`[]`),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// WithEmail sets a custom email and a matching external id
func (f *ContactFactory) WithEmail(email string, freshserviceID int64) *models.Contact {
	contact := f.Create()
	contact.Email = email
	contact.FreshserviceID = &freshserviceID
	return contact
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location bound to the given company
func (f *LocationFactory) Create(accountNumber string) *models.Location {
	return &models.Location{
		Name:                 models.MainOfficeName,
		Address:              "1 Main Street, Springfield",
		PhoneNumber:          "555-0100",
		CompanyAccountNumber: accountNumber,
	}
}

// WithName sets a custom location name
func (f *LocationFactory) WithName(accountNumber, name string) *models.Location {
	location := f.Create(accountNumber)
	location.Name = name
	return location
}

// BillingPlanFactory provides methods to create test BillingPlan data
type BillingPlanFactory struct{}

// NewBillingPlanFactory creates a new BillingPlanFactory
func NewBillingPlanFactory() *BillingPlanFactory {
	return &BillingPlanFactory{}
}

// Create creates a test BillingPlan with default values
func (f *BillingPlanFactory) Create() *models.BillingPlan {
	return &models.BillingPlan{
		PlanName:          "Professional",
		TermLength:        "Month to Month",
		PerUserCost:       85,
		SupportLevel:      "Extended Hours",
		Antivirus:         "SentinelOne",
		SOC:               "Managed SOC",
		PasswordManager:   "Keeper",
		SAT:               "None",
		EmailSecurity:     "Advanced",
		NetworkManagement: "Monitored",
	}
}

// WithPlanAndTerm sets a custom plan name and term length
func (f *BillingPlanFactory) WithPlanAndTerm(planName, termLength string) *models.BillingPlan {
	plan := f.Create()
	plan.PlanName = planName
	plan.TermLength = termLength
	return plan
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test admin User with the password "password"
func (f *UserFactory) Create() *models.User {
	user := &models.User{
		Username:        "admin",
		Email:           "admin@example.com",
		PermissionLevel: models.PermissionAdmin,
	}
	if err := user.SetPassword("password"); err != nil {
		panic(fmt.Sprintf("failed to hash factory password: %v", err))
	}
	return user
}

// WithPermission sets a custom username and permission level
func (f *UserFactory) WithPermission(username, level, companyAccountNumber string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	user.PermissionLevel = level
	user.CompanyAccountNumber = companyAccountNumber
	return user
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Company     *CompanyFactory
	Contact     *ContactFactory
	Location    *LocationFactory
	BillingPlan *BillingPlanFactory
	User        *UserFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:     NewCompanyFactory(),
		Contact:     NewContactFactory(),
		Location:    NewLocationFactory(),
		BillingPlan: NewBillingPlanFactory(),
		User:        NewUserFactory(),
	}
}
