package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/foodrecall/backend/internal/domain"
)

// RecallServiceConfig holds configuration for the recall service
type RecallServiceConfig struct {
	DefaultCountry string
}

// RecallService is the lookup facade: it resolves the active country,
// consults the cache, fans out to the country's recall source and the
// product database in parallel, merges the results and writes them back to
// the cache.
type RecallService struct {
	cache    *RecallCache
	sources  map[string]domain.RecallSource
	fallback domain.RecallSource
	products domain.ProductClient

	mu      sync.RWMutex
	country string
}

// NewRecallService creates a recall service. sources maps country codes to
// their adapters; fallback serves any unrecognized code. An empty default
// country falls back to FR.
func NewRecallService(
	cache *RecallCache,
	sources map[string]domain.RecallSource,
	fallback domain.RecallSource,
	products domain.ProductClient,
	config RecallServiceConfig,
) *RecallService {
	country := config.DefaultCountry
	if country == "" {
		country = domain.CountryFR
	}

	return &RecallService{
		cache:    cache,
		sources:  sources,
		fallback: fallback,
		products: products,
		country:  country,
	}
}

// SetCountry updates the current country. It takes effect on the next lookup
// that does not pass an explicit override; lookups already in flight keep
// the country they resolved at call time.
func (s *RecallService) SetCountry(code string) {
	s.mu.Lock()
	s.country = code
	s.mu.Unlock()
}

// Country returns the current country
func (s *RecallService) Country() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.country
}

// SearchByBarcode checks whether a product is recalled. countryOverride
// selects a source for this call only; pass "" to use the current country.
// Cache hits return the stored result as-is. On a miss the product fetch and
// the recall fetch run in parallel; both collaborators absorb their own
// upstream failures, so an error surfacing here is outside their contract
// and fails the whole call with domain.ErrRecallCheckFailed.
func (s *RecallService) SearchByBarcode(ctx context.Context, barcode, countryOverride string) (*domain.LookupResult, error) {
	country := s.resolveCountry(countryOverride)

	if cached, ok := s.cache.Get(ctx, country, barcode); ok {
		return cached, nil
	}

	var (
		product *domain.ProductInfo
		recalls []domain.RecallRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.products.FetchProductInfo(gctx, barcode)
		return err
	})
	g.Go(func() error {
		var err error
		recalls, err = s.sourceFor(country).FetchByBarcode(gctx, barcode)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecallCheckFailed, err)
	}

	if recalls == nil {
		recalls = []domain.RecallRecord{}
	}
	if product == nil {
		product = &domain.ProductInfo{
			Barcode: barcode,
			Name:    fmt.Sprintf("Product (Code: %s)", barcode),
		}
	}

	result := &domain.LookupResult{
		IsRecalled:  len(recalls) > 0,
		Recalls:     recalls,
		Product:     product,
		LastChecked: time.Now(),
	}

	// Best effort; Put logs and swallows its own failures
	s.cache.Put(ctx, country, barcode, result)

	return result, nil
}

// SearchByText searches recalls by free text against the resolved country's
// source. Results are not cached: the query space is unbounded. An error
// from the source is outside its no-throw contract and fails the call with
// domain.ErrRecallSearchFailed.
func (s *RecallService) SearchByText(ctx context.Context, query, countryOverride string) ([]domain.RecallRecord, error) {
	country := s.resolveCountry(countryOverride)

	recalls, err := s.sourceFor(country).SearchByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecallSearchFailed, err)
	}

	if recalls == nil {
		recalls = []domain.RecallRecord{}
	}
	return recalls, nil
}

// ClearCache removes every cached lookup result
func (s *RecallService) ClearCache(ctx context.Context) error {
	return s.cache.ClearAll(ctx)
}

// resolveCountry picks the effective country for one call
func (s *RecallService) resolveCountry(override string) string {
	if override != "" {
		return override
	}
	return s.Country()
}

// sourceFor dispatches a country code to its adapter, defaulting to the
// fallback source for unrecognized codes
func (s *RecallService) sourceFor(country string) domain.RecallSource {
	if source, ok := s.sources[country]; ok {
		return source
	}
	return s.fallback
}
