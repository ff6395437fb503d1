package models

import (
	"encoding/json"
	"time"
)

// Company is the local copy of a Freshservice department. The externally
// assigned account number is the business key and primary key; sync creates
// a company on first observation and overwrites the denormalized fields on
// every subsequent run. Companies are never deleted by sync.
type Company struct {
	AccountNumber string    `json:"account_number" gorm:"primaryKey;size:50" validate:"required,max=50"`
	Name          string    `json:"name" gorm:"not null;size:150" validate:"required,max=150"`
	Description   string    `json:"description" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Back-reference to the external record for traceability
	FreshserviceID *int64 `json:"freshservice_id" gorm:"uniqueIndex"`

	// Denormalized Freshservice fields, overwritten wholesale by sync
	PlanSelected       string          `json:"plan_selected" gorm:"size:100"`
	ProfitOrNonProfit  string          `json:"profit_or_non_profit" gorm:"size:50"`
	CompanyMainNumber  string          `json:"company_main_number" gorm:"size:50"`
	CompanyStartDate   string          `json:"company_start_date" gorm:"size:50"`
	HeadName           string          `json:"head_name" gorm:"size:150"`
	PrimaryContactName string          `json:"primary_contact_name" gorm:"size:150"`
	Domains            json.RawMessage `json:"domains" gorm:"type:jsonb"`
	Address            string          `json:"address" gorm:"size:300"`

	// Portal-editable fields, untouched by sync
	BillingPlan        string `json:"billing_plan" gorm:"size:100"`
	SupportLevel       string `json:"support_level" gorm:"size:100"`
	EmailSystem        string `json:"email_system" gorm:"size:100"`
	PhoneSystem        string `json:"phone_system" gorm:"size:100"`
	ContractTermLength string `json:"contract_term_length" gorm:"size:50"`
	ManagedUsers       *int   `json:"managed_users"`
	ManagedDevices     *int   `json:"managed_devices"`
	ManagedNetwork     *bool  `json:"managed_network"`
	DattoPortalURL     string `json:"datto_portal_url" gorm:"size:300"`
	HeadUserID         *int64 `json:"head_user_id"`
	PrimeUserID        *int64 `json:"prime_user_id"`
	ContractStartDate  string `json:"contract_start_date" gorm:"size:50"`
	ContractEndDate    string `json:"contract_end_date" gorm:"size:50"`

	// Relationships
	Locations        []Location               `json:"locations,omitempty" gorm:"foreignKey:CompanyAccountNumber;constraint:OnDelete:CASCADE"`
	FeatureOverrides []CompanyFeatureOverride `json:"feature_overrides,omitempty" gorm:"foreignKey:CompanyAccountNumber;constraint:OnDelete:CASCADE"`
	Contacts         []Contact                `json:"contacts,omitempty" gorm:"many2many:contact_companies;joinForeignKey:CompanyAccountNumber;joinReferences:ContactID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
