package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/foodrecall/backend/internal/domain"
)

// veganTag marks a product the ingredient analysis classified as vegan
const veganTag = "en:vegan"

// Client queries the Open Food Facts product database by barcode. It is
// country-independent and never fails: any upstream error or unknown product
// yields a placeholder ProductInfo carrying the barcode and a generated name.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts client
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

// productResponse is the v0 product endpoint envelope; status 1 means found
type productResponse struct {
	Status  int          `json:"status"`
	Product *productData `json:"product"`
}

type productData struct {
	ProductName             string   `json:"product_name"`
	ProductNameFR           string   `json:"product_name_fr"`
	GenericName             string   `json:"generic_name"`
	Brands                  string   `json:"brands"`
	ImageURL                string   `json:"image_url"`
	ImageFrontURL           string   `json:"image_front_url"`
	NutriScoreGrade         string   `json:"nutriscore_grade"`
	IngredientsAnalysisTags []string `json:"ingredients_analysis_tags"`
}

// FetchProductInfo looks up display metadata for a barcode. It always
// returns a well-formed ProductInfo: the placeholder fallback covers fetch
// failures and unknown products alike.
func (c *Client) FetchProductInfo(ctx context.Context, barcode string) (*domain.ProductInfo, error) {
	product, err := c.fetch(ctx, barcode)
	if err != nil {
		log.Printf("[OpenFoodFacts] fetch failed, using placeholder: %v", err)
		return placeholder(barcode), nil
	}
	if product == nil {
		return placeholder(barcode), nil
	}

	return mapProduct(barcode, product), nil
}

// fetch executes one GET against the v0 product endpoint. A nil product with
// a nil error means the database has no record for the barcode.
func (c *Client) fetch(ctx context.Context, barcode string) (*productData, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)

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

	var productResp productResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if productResp.Status != 1 || productResp.Product == nil {
		return nil, nil
	}

	return productResp.Product, nil
}

// mapProduct builds a ProductInfo from a raw product payload
func mapProduct(barcode string, p *productData) *domain.ProductInfo {
	info := &domain.ProductInfo{
		Barcode: barcode,
		Name:    productName(barcode, p),
		Brand:   p.Brands,
	}

	// Prefer the front-facing image
	if p.ImageURL != "" {
		info.ImageURL = p.ImageURL
	} else {
		info.ImageURL = p.ImageFrontURL
	}

	if p.NutriScoreGrade != "" {
		info.NutriScore = strings.ToUpper(p.NutriScoreGrade)
	}

	for _, tag := range p.IngredientsAnalysisTags {
		if tag == veganTag {
			info.IsVegan = true
			break
		}
	}

	return info
}

// productName resolves the name fallback chain: primary name, localized
// name, generic name, then the generated placeholder.
func productName(barcode string, p *productData) string {
	for _, candidate := range []string{p.ProductName, p.ProductNameFR, p.GenericName} {
		if candidate != "" {
			return candidate
		}
	}
	return placeholderName(barcode)
}

// placeholder is the never-fail fallback ProductInfo
func placeholder(barcode string) *domain.ProductInfo {
	return &domain.ProductInfo{
		Barcode: barcode,
		Name:    placeholderName(barcode),
	}
}

func placeholderName(barcode string) string {
	return fmt.Sprintf("Product (Code: %s)", barcode)
}
