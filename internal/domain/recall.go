package domain

import "time"

// Supported country codes for recall sources
const (
	CountryFR = "FR"
	CountryUK = "UK"
	CountryIT = "IT"
	CountryES = "ES"
)

// RecallRecord is the normalized, source-independent representation of one
// official recall notice. Free-text fields default to "" when the upstream
// omits them; Distributors and BatchNumbers stay nil when the source field is
// absent, so absence remains distinguishable from a known-empty list.
type RecallRecord struct {
	ID           string   `json:"id"`
	ProductName  string   `json:"productName"`
	Brand        string   `json:"brand"`
	Barcode      string   `json:"barcode,omitempty"`
	GTIN         string   `json:"gtin,omitempty"`
	RecallDate   string   `json:"recallDate"` // source-native representation, not parsed here
	Reason       string   `json:"reason"`
	Risk         string   `json:"risk"`
	Description  string   `json:"description"`
	Actions      string   `json:"actions"`
	Distributors []string `json:"distributors,omitempty"`
	BatchNumbers []string `json:"batchNumbers,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

// ProductInfo holds display metadata for a scanned product, sourced from the
// open product database. Name is always populated: when the database has no
// record, it falls back to a generated placeholder.
type ProductInfo struct {
	Barcode    string `json:"barcode"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	NutriScore string `json:"nutriScore,omitempty"` // single uppercase letter A-E
	IsVegan    bool   `json:"isVegan"`
}

// LookupResult is the answer to a barcode lookup. IsRecalled is always
// derived from len(Recalls); LastChecked records when the result was computed
// from the network, not when it was last read from cache.
type LookupResult struct {
	IsRecalled  bool           `json:"isRecalled"`
	Recalls     []RecallRecord `json:"recalls"`
	Product     *ProductInfo   `json:"product,omitempty"`
	LastChecked time.Time      `json:"lastChecked"`
}
