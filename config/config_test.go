package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("FOODRECALL_SERVER_PORT")
		os.Unsetenv("FOODRECALL_SERVER_ENVIRONMENT")
		os.Unsetenv("FOODRECALL_SOURCES_DEFAULT_COUNTRY")
		os.Unsetenv("FOODRECALL_SOURCES_RAPPELCONSO_URL")
		os.Unsetenv("FOODRECALL_SOURCES_FSA_ALERTS_URL")
		os.Unsetenv("FOODRECALL_PRODUCT_OPENFOODFACTS_URL")
		os.Unsetenv("FOODRECALL_CACHE_TYPE")
		os.Unsetenv("FOODRECALL_CACHE_REDIS_URL")
		os.Unsetenv("FOODRECALL_CACHE_TTL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Sources.DefaultCountry != "FR" {
			t.Errorf("Sources.DefaultCountry = %s, want FR", cfg.Sources.DefaultCountry)
		}
		if cfg.Sources.RappelConsoURL != "https://data.economie.gouv.fr" {
			t.Errorf("Sources.RappelConsoURL = %s, want https://data.economie.gouv.fr", cfg.Sources.RappelConsoURL)
		}
		if cfg.Sources.FSAAlertsURL != "https://data.food.gov.uk/food-alerts" {
			t.Errorf("Sources.FSAAlertsURL = %s, want https://data.food.gov.uk/food-alerts", cfg.Sources.FSAAlertsURL)
		}
		if cfg.Product.OpenFoodFactsURL != "https://world.openfoodfacts.org" {
			t.Errorf("Product.OpenFoodFactsURL = %s, want https://world.openfoodfacts.org", cfg.Product.OpenFoodFactsURL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("FOODRECALL_SERVER_PORT", "9090")
		os.Setenv("FOODRECALL_SOURCES_DEFAULT_COUNTRY", "UK")
		os.Setenv("FOODRECALL_CACHE_TTL", "1h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Sources.DefaultCountry != "UK" {
			t.Errorf("Sources.DefaultCountry = %s, want UK", cfg.Sources.DefaultCountry)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("FOODRECALL_CACHE_TYPE", "memcached")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid configuration error")
		}
	})

	t.Run("requires redis url when cache type is redis", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("FOODRECALL_CACHE_TYPE", "redis")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want missing Redis URL error")
		}
	})

	t.Run("rejects unknown default country", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("FOODRECALL_SOURCES_DEFAULT_COUNTRY", "DE")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid configuration error")
		}
	})
}
