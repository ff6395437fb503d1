package models

import "time"

// MainOfficeName is the conventional name of the single location that sync
// upserts per company when the source carries an address.
const MainOfficeName = "Main Office"

// Location is an office address belonging to exactly one company.
type Location struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name                 string `json:"name" gorm:"not null;size:150" validate:"required,max=150"`
	Address              string `json:"address" gorm:"size:300"`
	PhoneNumber          string `json:"phone_number" gorm:"size:50"`
	CompanyAccountNumber string `json:"company_account_number" gorm:"not null;size:50;index" validate:"required"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyAccountNumber;references:AccountNumber"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
