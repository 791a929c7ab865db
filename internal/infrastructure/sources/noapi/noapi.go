// Package noapi serves the countries whose recall portals publish no
// machine-readable feed (Italy's Ministry of Health and Spain's AESAN only
// offer HTML pages). Their source reports "no known recalls" for every
// query, which is deliberate degraded-service behavior: callers cannot and
// must not distinguish "no API" from "no recalls found".
package noapi

import (
	"context"

	"github.com/foodrecall/backend/internal/domain"
)

// Source is a recall source with no queryable upstream
type Source struct {
	country string
}

// NewSource creates a degraded source for the given country code
func NewSource(country string) *Source {
	return &Source{country: country}
}

// Country returns the country code this source stands in for
func (s *Source) Country() string {
	return s.country
}

// FetchByBarcode always returns an empty result
func (s *Source) FetchByBarcode(ctx context.Context, barcode string) ([]domain.RecallRecord, error) {
	return []domain.RecallRecord{}, nil
}

// SearchByText always returns an empty result
func (s *Source) SearchByText(ctx context.Context, query string) ([]domain.RecallRecord, error) {
	return []domain.RecallRecord{}, nil
}
