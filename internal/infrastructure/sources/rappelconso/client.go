package rappelconso

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
	searchPath = "/api/records/1.0/search/"
	dataset    = "rappelconso0"

	barcodeRows = 100
	textRows    = 50
)

// facets requested on every query, matching the dataset's published facets
var facets = []string{
	"categorie_de_produit",
	"sous_categorie_de_produit",
	"nom_de_la_marque_du_produit",
}

// Client queries the French government RappelConso open-data API.
//
// Both fetch operations absorb their own failures: a network error, non-2xx
// status or malformed payload degrades to an empty slice with a nil error, so
// a failing source reads as "no known recalls" rather than aborting a lookup.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new RappelConso API client
func NewClient(baseURL string) *Client {
	// The open-data portal allows generous anonymous quotas; 2 req/sec with a
	// small burst keeps us well inside them.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// FetchByBarcode returns recall records matching a barcode, up to 100 rows.
func (c *Client) FetchByBarcode(ctx context.Context, barcode string) ([]domain.RecallRecord, error) {
	params := url.Values{}
	params.Set("dataset", dataset)
	params.Set("q", barcode)
	params.Set("rows", fmt.Sprintf("%d", barcodeRows))
	for _, f := range facets {
		params.Add("facet", f)
	}

	records, err := c.search(ctx, params)
	if err != nil {
		log.Printf("[RappelConso] barcode fetch failed, degrading to empty: %v", err)
		return []domain.RecallRecord{}, nil
	}

	return mapRecords(records, barcode), nil
}

// SearchByText returns recall records matching a free-text query, up to 50
// rows sorted by descending publication date.
func (c *Client) SearchByText(ctx context.Context, query string) ([]domain.RecallRecord, error) {
	params := url.Values{}
	params.Set("dataset", dataset)
	params.Set("q", query)
	params.Set("rows", fmt.Sprintf("%d", textRows))
	params.Set("sort", "-date_de_publication")
	for _, f := range facets {
		params.Add("facet", f)
	}

	records, err := c.search(ctx, params)
	if err != nil {
		log.Printf("[RappelConso] text search failed, degrading to empty: %v", err)
		return []domain.RecallRecord{}, nil
	}

	return mapRecords(records, ""), nil
}

// search executes one GET against the records search endpoint
func (c *Client) search(ctx context.Context, params url.Values) ([]searchRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
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

	return searchResp.Records, nil
}
