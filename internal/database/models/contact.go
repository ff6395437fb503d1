package models

import (
	"encoding/json"
	"time"
)

// Contact is the local copy of a Freshservice requester, keyed by primary
// email. The company association is many-to-many: sync only ever adds to the
// set (union merge), it never removes an association.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name              string          `json:"name" gorm:"not null;size:150" validate:"required,max=150"`
	Email             string          `json:"email" gorm:"uniqueIndex;not null;size:150" validate:"required,email,max=150"`
	Title             string          `json:"title" gorm:"size:150"`
	Active            *bool           `json:"active"`
	MobilePhoneNumber string          `json:"mobile_phone_number" gorm:"size:50"`
	WorkPhoneNumber   string          `json:"work_phone_number" gorm:"size:50"`
	SecondaryEmails   json.RawMessage `json:"secondary_emails" gorm:"type:jsonb"`
	FreshserviceID    *int64          `json:"freshservice_id" gorm:"uniqueIndex"`

	// Relationships
	Companies []Company `json:"companies,omitempty" gorm:"many2many:contact_companies;joinForeignKey:ContactID;joinReferences:CompanyAccountNumber"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// CompanyAccountNumbers returns the association set as a slice of account numbers.
func (c *Contact) CompanyAccountNumbers() []string {
	numbers := make([]string, 0, len(c.Companies))
	for _, company := range c.Companies {
		numbers = append(numbers, company.AccountNumber)
	}
	return numbers
}
