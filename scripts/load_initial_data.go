package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nexus-hub-backend/internal/config"
	"nexus-hub-backend/internal/database"
	"nexus-hub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type BillingPlanData struct {
	PlanName   string `yaml:"plan_name"`
	TermLength string `yaml:"term_length"`

	PerUserCost                float64 `yaml:"per_user_cost"`
	PerWorkstationCost         float64 `yaml:"per_workstation_cost"`
	PerServerCost              float64 `yaml:"per_server_cost"`
	PerVMCost                  float64 `yaml:"per_vm_cost"`
	PerSwitchCost              float64 `yaml:"per_switch_cost"`
	PerFirewallCost            float64 `yaml:"per_firewall_cost"`
	PerHourTicketCost          float64 `yaml:"per_hour_ticket_cost"`
	BackupBaseFeeWorkstation   float64 `yaml:"backup_base_fee_workstation"`
	BackupBaseFeeServer        float64 `yaml:"backup_base_fee_server"`
	BackupCostPerGBWorkstation float64 `yaml:"backup_cost_per_gb_workstation"`
	BackupCostPerGBServer      float64 `yaml:"backup_cost_per_gb_server"`

	SupportLevel      string `yaml:"support_level"`
	Antivirus         string `yaml:"antivirus"`
	SOC               string `yaml:"soc"`
	PasswordManager   string `yaml:"password_manager"`
	SAT               string `yaml:"sat"`
	EmailSecurity     string `yaml:"email_security"`
	NetworkManagement string `yaml:"network_management"`
}

type FeatureOptionData struct {
	FeatureType string `yaml:"feature_type"`
	DisplayName string `yaml:"display_name"`
}

// File structures
type BillingPlansFile struct {
	BillingPlans []BillingPlanData `yaml:"billing_plans"`
}

type FeatureOptionsFile struct {
	FeatureOptions []FeatureOptionData `yaml:"feature_options"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := ensureAdminUser(db); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	plans, err := loadBillingPlans(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load billing plans: %w", err)
	}

	options, err := loadFeatureOptions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load feature options: %w", err)
	}

	planCreated := 0
	for _, planData := range plans {
		created, err := createBillingPlan(db, planData)
		if err != nil {
			return fmt.Errorf("failed to create billing plan %s (%s): %w", planData.PlanName, planData.TermLength, err)
		}
		if created {
			planCreated++
		}
	}
	log.Printf("Billing plans: %d created, %d total", planCreated, len(plans))

	optionCreated := 0
	for _, optionData := range options {
		created, err := createFeatureOption(db, optionData)
		if err != nil {
			return fmt.Errorf("failed to create feature option %s: %w", optionData.DisplayName, err)
		}
		if created {
			optionCreated++
		}
	}
	log.Printf("Feature options: %d created, %d total", optionCreated, len(options))

	return nil
}

func loadBillingPlans(dataDir string) ([]BillingPlanData, error) {
	var allPlans []BillingPlanData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "billing_plans") {
			var file BillingPlansFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlans = append(allPlans, file.BillingPlans...)
		}
		return nil
	})

	return allPlans, err
}

func loadFeatureOptions(dataDir string) ([]FeatureOptionData, error) {
	var allOptions []FeatureOptionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "feature_options") {
			var file FeatureOptionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOptions = append(allOptions, file.FeatureOptions...)
		}
		return nil
	})

	return allOptions, err
}

func createBillingPlan(db *gorm.DB, planData BillingPlanData) (bool, error) {
	var plan models.BillingPlan
	if err := db.Where("plan_name = ? AND term_length = ?", planData.PlanName, planData.TermLength).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			plan = models.BillingPlan{
				PlanName:                   planData.PlanName,
				TermLength:                 planData.TermLength,
				PerUserCost:                planData.PerUserCost,
				PerWorkstationCost:         planData.PerWorkstationCost,
				PerServerCost:              planData.PerServerCost,
				PerVMCost:                  planData.PerVMCost,
				PerSwitchCost:              planData.PerSwitchCost,
				PerFirewallCost:            planData.PerFirewallCost,
				PerHourTicketCost:          planData.PerHourTicketCost,
				BackupBaseFeeWorkstation:   planData.BackupBaseFeeWorkstation,
				BackupBaseFeeServer:        planData.BackupBaseFeeServer,
				BackupCostPerGBWorkstation: planData.BackupCostPerGBWorkstation,
				BackupCostPerGBServer:      planData.BackupCostPerGBServer,
				SupportLevel:               planData.SupportLevel,
				Antivirus:                  planData.Antivirus,
				SOC:                        planData.SOC,
				PasswordManager:            planData.PasswordManager,
				SAT:                        planData.SAT,
				EmailSecurity:              planData.EmailSecurity,
				NetworkManagement:          planData.NetworkManagement,
			}

			if err := db.Create(&plan).Error; err != nil {
				return false, fmt.Errorf("failed to create billing plan: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query billing plan: %w", err)
	}

	return false, nil // existing
}

func createFeatureOption(db *gorm.DB, optionData FeatureOptionData) (bool, error) {
	var option models.FeatureOption
	if err := db.Where("feature_type = ? AND display_name = ?", optionData.FeatureType, optionData.DisplayName).First(&option).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			option = models.FeatureOption{
				FeatureType: optionData.FeatureType,
				DisplayName: optionData.DisplayName,
			}

			if err := db.Create(&option).Error; err != nil {
				return false, fmt.Errorf("failed to create feature option: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query feature option: %w", err)
	}

	return false, nil // existing
}

// ensureAdminUser creates the bootstrap admin account when the users table
// is empty. Credentials come from ADMIN_USERNAME and ADMIN_PASSWORD.
func ensureAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME or ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = username + "@localhost"
	}

	admin := models.User{
		Username:        username,
		Email:           email,
		PermissionLevel: models.PermissionAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created admin user %q", username)
	return nil
}
