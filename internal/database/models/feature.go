package models

import "time"

// FeatureKeys enumerates the billing-plan feature columns that a company may
// override, mapped to their display names.
var FeatureKeys = map[string]string{
	"antivirus":          "Antivirus",
	"soc":                "SOC (Security Operations Center)",
	"password_manager":   "Password Manager",
	"sat":                "Security Awareness Training",
	"email_security":     "Email Security",
	"network_management": "Network Management",
}

// CompanyFeatureOverride replaces a billing-plan feature default for one company.
type CompanyFeatureOverride struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyAccountNumber string `json:"company_account_number" gorm:"not null;size:50;uniqueIndex:idx_company_feature" validate:"required"`
	FeatureKey           string `json:"feature_key" gorm:"not null;size:50;uniqueIndex:idx_company_feature" validate:"required"`
	Value                string `json:"value" gorm:"size:200"`
	OverrideEnabled      bool   `json:"override_enabled" gorm:"default:true"`
}

// TableName returns the table name for CompanyFeatureOverride
func (CompanyFeatureOverride) TableName() string {
	return "company_feature_overrides"
}

// FeatureOption is a dropdown option for a feature type (e.g. email or phone system).
type FeatureOption struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FeatureType string `json:"feature_type" gorm:"not null;size:50;index" validate:"required,oneof=email phone"`
	DisplayName string `json:"display_name" gorm:"not null;size:150" validate:"required,max=150"`
}

// TableName returns the table name for FeatureOption
func (FeatureOption) TableName() string {
	return "feature_options"
}
