package config

import (
	"fmt"
	"strings"

	apperrors "team-management-backend/internal/errors"

	"github.com/spf13/viper"
)

// Identity provider backends for the user directory
const (
	IdentityProviderHTTP = "http"
	IdentityProviderLDAP = "ldap"
	IdentityProviderNone = "none"
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

	// JWT configuration; empty disables bearer token validation
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// User directory configuration
	IdentityProvider  string `mapstructure:"IDENTITY_PROVIDER"`
	UserAPIBaseURL    string `mapstructure:"USER_API_BASE_URL"`
	UserAPITimeoutSec int    `mapstructure:"USER_API_TIMEOUT_SEC"`
	UserAPIToken      string `mapstructure:"USER_API_TOKEN"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`
	LDAPUserIDAttribute    string `mapstructure:"LDAP_USER_ID_ATTRIBUTE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
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

	config.IdentityProvider = strings.ToLower(strings.TrimSpace(config.IdentityProvider))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "team_management")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:4200"})

	// User directory defaults
	viper.SetDefault("IDENTITY_PROVIDER", IdentityProviderNone)
	viper.SetDefault("USER_API_BASE_URL", "")
	viper.SetDefault("USER_API_TIMEOUT_SEC", 5)
	viper.SetDefault("USER_API_TOKEN", "")

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)
	viper.SetDefault("LDAP_USER_ID_ATTRIBUTE", "uidNumber")
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
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.IdentityProvider {
	case IdentityProviderNone:
	case IdentityProviderHTTP:
		if config.UserAPIBaseURL == "" {
			return apperrors.ErrIdentityBaseURLMissing
		}
	case IdentityProviderLDAP:
		if config.LDAPHost == "" {
			return apperrors.ErrIdentityLDAPHostMissing
		}
	default:
		return apperrors.ErrUnknownIdentityProvider
	}

	if config.IsProduction() && config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
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

// JWTEnabled reports whether bearer tokens should be validated
func (c *Config) JWTEnabled() bool {
	return c.JWTSecret != ""
}
