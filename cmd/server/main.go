package main

import (
	"fmt"
	"log"
	"os"

	"github.com/foodrecall/backend/config"
	httpDelivery "github.com/foodrecall/backend/internal/delivery/http"
	"github.com/foodrecall/backend/internal/domain"
	"github.com/foodrecall/backend/internal/infrastructure/openfoodfacts"
	"github.com/foodrecall/backend/internal/infrastructure/sources/fsa"
	"github.com/foodrecall/backend/internal/infrastructure/sources/noapi"
	"github.com/foodrecall/backend/internal/infrastructure/sources/rappelconso"
	"github.com/foodrecall/backend/internal/infrastructure/store"
	"github.com/foodrecall/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodRecall Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Default country: %s", cfg.Sources.DefaultCountry)
	log.Printf("Cache: type=%s ttl=%s", cfg.Cache.Type, cfg.Cache.TTL)

	// Pick the cache store backend
	var kv domain.KeyValueStore
	if cfg.Cache.Type == "redis" {
		kv = store.NewRedisStore(cfg.Cache.RedisURL)
		log.Printf("Redis cache store: %s", cfg.Cache.RedisURL)
	} else {
		kv = store.NewMemoryStore()
	}

	// Per-country recall sources; IT and ES have no machine-readable feed
	frSource := rappelconso.NewClient(cfg.Sources.RappelConsoURL)
	sources := map[string]domain.RecallSource{
		domain.CountryFR: frSource,
		domain.CountryUK: fsa.NewClient(cfg.Sources.FSAAlertsURL),
		domain.CountryIT: noapi.NewSource(domain.CountryIT),
		domain.CountryES: noapi.NewSource(domain.CountryES),
	}
	log.Printf("Recall sources: FR=%s UK=%s IT/ES=unavailable",
		cfg.Sources.RappelConsoURL, cfg.Sources.FSAAlertsURL)

	productClient := openfoodfacts.NewClient(cfg.Product.OpenFoodFactsURL)
	log.Printf("Product database: %s", cfg.Product.OpenFoodFactsURL)

	// Initialize usecase layer
	recallCache := usecase.NewRecallCache(kv, cfg.Cache.TTL)
	recallService := usecase.NewRecallService(
		recallCache,
		sources,
		frSource,
		productClient,
		usecase.RecallServiceConfig{
			DefaultCountry: cfg.Sources.DefaultCountry,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recallService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
