package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Freshservice configuration (external source)
	FreshserviceAPIKey   string `mapstructure:"FRESHSERVICE_API_KEY"`
	FreshserviceDomain   string `mapstructure:"FRESHSERVICE_DOMAIN"`
	FreshservicePageSize int    `mapstructure:"FRESHSERVICE_PAGE_SIZE"`

	// Nexus API configuration (consumed by the sync CLI)
	NexusAPIURL   string `mapstructure:"NEXUS_API_URL"`
	NexusUsername string `mapstructure:"NEXUS_USERNAME"`
	NexusPassword string `mapstructure:"NEXUS_PASSWORD"`

	// Sync behavior
	SyncContinueOnError bool `mapstructure:"SYNC_CONTINUE_ON_ERROR"`
}

// Load reads configuration from environment variables and config files.
// The config file directory can be overridden with NEXUS_CONFIG_PATH.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if path := os.Getenv("NEXUS_CONFIG_PATH"); path != "" {
		viper.AddConfigPath(path)
	}
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "nexus_hub")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Freshservice defaults
	viper.SetDefault("FRESHSERVICE_API_KEY", "")
	viper.SetDefault("FRESHSERVICE_DOMAIN", "")
	viper.SetDefault("FRESHSERVICE_PAGE_SIZE", 100)

	// Nexus API defaults
	viper.SetDefault("NEXUS_API_URL", "https://127.0.0.1:5000/api")
	viper.SetDefault("NEXUS_USERNAME", "")
	viper.SetDefault("NEXUS_PASSWORD", "")

	// Sync defaults: observed behavior aborts the whole batch on the first
	// failed write, so per-record isolation is opt-in.
	viper.SetDefault("SYNC_CONTINUE_ON_ERROR", false)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// ValidateSync checks the fields the sync CLI cannot run without.
func ValidateSync(config *Config) error {
	if config.FreshserviceAPIKey == "" {
		return fmt.Errorf("FRESHSERVICE_API_KEY is required")
	}
	if config.FreshserviceDomain == "" {
		return fmt.Errorf("FRESHSERVICE_DOMAIN is required")
	}
	if config.NexusAPIURL == "" {
		return fmt.Errorf("NEXUS_API_URL is required")
	}
	if config.NexusUsername == "" || config.NexusPassword == "" {
		return fmt.Errorf("NEXUS_USERNAME and NEXUS_PASSWORD are required")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
