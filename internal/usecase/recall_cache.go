package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/foodrecall/backend/internal/domain"
)

// cacheKeyPrefix namespaces recall cache entries inside the shared store, so
// ClearAll can remove exactly this subset and leave unrelated keys untouched.
const cacheKeyPrefix = "recall_cache"

// defaultCacheTTL is the cache validity window
const defaultCacheTTL = 24 * time.Hour

// RecallCache persists lookup results keyed by (country, barcode). Validity
// is decided at read time from the stored payload: an entry counts only if it
// carries a product and its lastChecked is inside the TTL window. Store
// I/O failures are swallowed; caching is an optimization, never a
// correctness requirement.
type RecallCache struct {
	store domain.KeyValueStore
	ttl   time.Duration
}

// NewRecallCache creates a recall cache over a key-value store. A zero ttl
// falls back to the 24 hour default.
func NewRecallCache(store domain.KeyValueStore, ttl time.Duration) *RecallCache {
	if ttl == 0 {
		ttl = defaultCacheTTL
	}
	return &RecallCache{
		store: store,
		ttl:   ttl,
	}
}

// Get reads the cached lookup result for (country, barcode). The second
// return reports a usable hit: absent, unparsable, stale, and product-less
// entries all read as a miss.
func (c *RecallCache) Get(ctx context.Context, country, barcode string) (*domain.LookupResult, bool) {
	raw, ok, err := c.store.Get(ctx, cacheKey(country, barcode))
	if err != nil {
		log.Printf("[Cache] read failed for %s/%s, treating as miss: %v", country, barcode, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var result domain.LookupResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("[Cache] unparsable entry for %s/%s, treating as miss: %v", country, barcode, err)
		return nil, false
	}

	// Both conditions must hold: a product payload and a fresh timestamp
	if result.Product == nil {
		return nil, false
	}
	if time.Since(result.LastChecked) >= c.ttl {
		return nil, false
	}

	return &result, true
}

// Put persists a lookup result for (country, barcode). Failures are logged
// and swallowed.
func (c *RecallCache) Put(ctx context.Context, country, barcode string, result *domain.LookupResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("[Cache] marshal failed for %s/%s: %v", country, barcode, err)
		return
	}

	if err := c.store.Set(ctx, cacheKey(country, barcode), string(payload)); err != nil {
		log.Printf("[Cache] write failed for %s/%s: %v", country, barcode, err)
	}
}

// ClearAll removes every recall cache entry in one batch, leaving keys
// outside the cache prefix untouched.
func (c *RecallCache) ClearAll(ctx context.Context) error {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("listing cache keys: %w", err)
	}

	var cacheKeys []string
	for _, key := range keys {
		if strings.HasPrefix(key, cacheKeyPrefix) {
			cacheKeys = append(cacheKeys, key)
		}
	}

	if err := c.store.RemoveMany(ctx, cacheKeys); err != nil {
		return fmt.Errorf("removing cache keys: %w", err)
	}
	return nil
}

// cacheKey builds the store key for a (country, barcode) pair
func cacheKey(country, barcode string) string {
	return fmt.Sprintf("%s_%s_%s", cacheKeyPrefix, country, barcode)
}
