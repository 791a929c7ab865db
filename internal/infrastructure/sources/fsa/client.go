package fsa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/foodrecall/backend/internal/domain"
)

const (
	searchPath = "/search.json"

	barcodeLimit = 100
	textLimit    = 50
)

// Client queries the UK Food Standards Agency public food-alerts endpoint.
//
// Like every recall source, it absorbs its own failures: network errors,
// non-2xx responses and malformed payloads all degrade to an empty slice.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new FSA food-alerts client
func NewClient(baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// FetchByBarcode returns recall records matching a barcode, up to 100 items.
func (c *Client) FetchByBarcode(ctx context.Context, barcode string) ([]domain.RecallRecord, error) {
	items, err := c.search(ctx, barcode, barcodeLimit)
	if err != nil {
		log.Printf("[FSA] barcode fetch failed, degrading to empty: %v", err)
		return []domain.RecallRecord{}, nil
	}

	return mapItems(items, barcode), nil
}

// SearchByText returns recall records matching a free-text query, up to 50
// items.
func (c *Client) SearchByText(ctx context.Context, query string) ([]domain.RecallRecord, error) {
	items, err := c.search(ctx, query, textLimit)
	if err != nil {
		log.Printf("[FSA] text search failed, degrading to empty: %v", err)
		return []domain.RecallRecord{}, nil
	}

	return mapItems(items, ""), nil
}

// search executes one GET against the food-alerts search endpoint
func (c *Client) search(ctx context.Context, term string, limit int) ([]alertItem, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Set("search", term)
	params.Set("limit", fmt.Sprintf("%d", limit))

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "FoodRecall/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return searchResp.Items, nil
}
