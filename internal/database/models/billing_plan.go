package models

import "time"

// BillingPlan holds the per-plan, per-term feature defaults and rates.
// A plan is identified by the (plan_name, term_length) pair; the feature
// columns supply the defaults that company-level overrides sit on top of.
type BillingPlan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PlanName   string `json:"plan_name" gorm:"not null;size:100;uniqueIndex:idx_plan_term" validate:"required,max=100"`
	TermLength string `json:"term_length" gorm:"not null;size:50;uniqueIndex:idx_plan_term" validate:"required,max=50"`

	// Rates
	PerUserCost                float64 `json:"per_user_cost"`
	PerWorkstationCost         float64 `json:"per_workstation_cost"`
	PerServerCost              float64 `json:"per_server_cost"`
	PerVMCost                  float64 `json:"per_vm_cost"`
	PerSwitchCost              float64 `json:"per_switch_cost"`
	PerFirewallCost            float64 `json:"per_firewall_cost"`
	PerHourTicketCost          float64 `json:"per_hour_ticket_cost"`
	BackupBaseFeeWorkstation   float64 `json:"backup_base_fee_workstation"`
	BackupBaseFeeServer        float64 `json:"backup_base_fee_server"`
	BackupCostPerGBWorkstation float64 `json:"backup_cost_per_gb_workstation"`
	BackupCostPerGBServer      float64 `json:"backup_cost_per_gb_server"`

	// Feature defaults
	SupportLevel      string `json:"support_level" gorm:"size:100"`
	Antivirus         string `json:"antivirus" gorm:"size:100"`
	SOC               string `json:"soc" gorm:"size:100"`
	PasswordManager   string `json:"password_manager" gorm:"size:100"`
	SAT               string `json:"sat" gorm:"size:100"`
	EmailSecurity     string `json:"email_security" gorm:"size:100"`
	NetworkManagement string `json:"network_management" gorm:"size:100"`
}

// TableName returns the table name for BillingPlan
func (BillingPlan) TableName() string {
	return "billing_plans"
}

// FeatureDefault returns the plan default for a known feature key.
// Unknown keys return an empty string and false.
func (p *BillingPlan) FeatureDefault(key string) (string, bool) {
	switch key {
	case "antivirus":
		return p.Antivirus, true
	case "soc":
		return p.SOC, true
	case "password_manager":
		return p.PasswordManager, true
	case "sat":
		return p.SAT, true
	case "email_security":
		return p.EmailSecurity, true
	case "network_management":
		return p.NetworkManagement, true
	default:
		return "", false
	}
}
