package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/foodrecall/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Sources SourcesConfig
	Product ProductConfig
	Cache   CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourcesConfig holds per-country recall source configuration
type SourcesConfig struct {
	DefaultCountry string `mapstructure:"default_country"`
	RappelConsoURL string `mapstructure:"rappelconso_url"`
	FSAAlertsURL   string `mapstructure:"fsa_alerts_url"`
}

// ProductConfig holds open product database configuration
type ProductConfig struct {
	OpenFoodFactsURL string `mapstructure:"openfoodfacts_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/foodrecall/")

	// Environment variable settings
	v.SetEnvPrefix("FOODRECALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Source defaults
	v.SetDefault("sources.default_country", domain.CountryFR)
	v.SetDefault("sources.rappelconso_url", "https://data.economie.gouv.fr")
	v.SetDefault("sources.fsa_alerts_url", "https://data.food.gov.uk/food-alerts")

	// Product database defaults
	v.SetDefault("product.openfoodfacts_url", "https://world.openfoodfacts.org")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	switch config.Sources.DefaultCountry {
	case domain.CountryFR, domain.CountryUK, domain.CountryIT, domain.CountryES:
	default:
		return fmt.Errorf("default country must be one of FR, UK, IT, ES, got: %s", config.Sources.DefaultCountry)
	}

	return nil
}
