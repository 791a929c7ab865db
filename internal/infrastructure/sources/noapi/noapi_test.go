package noapi

import (
	"context"
	"testing"

	"github.com/foodrecall/backend/internal/domain"
)

func TestSource_AlwaysEmpty(t *testing.T) {
	ctx := context.Background()

	for _, country := range []string{domain.CountryIT, domain.CountryES} {
		source := NewSource(country)

		if got := source.Country(); got != country {
			t.Errorf("Country() = %s, want %s", got, country)
		}

		for _, input := range []string{"1234567890", "pasta", ""} {
			recalls, err := source.FetchByBarcode(ctx, input)
			if err != nil {
				t.Errorf("FetchByBarcode(%q) error = %v, want nil", input, err)
			}
			if recalls == nil || len(recalls) != 0 {
				t.Errorf("FetchByBarcode(%q) = %v, want empty slice", input, recalls)
			}

			recalls, err = source.SearchByText(ctx, input)
			if err != nil {
				t.Errorf("SearchByText(%q) error = %v, want nil", input, err)
			}
			if recalls == nil || len(recalls) != 0 {
				t.Errorf("SearchByText(%q) = %v, want empty slice", input, recalls)
			}
		}
	}
}
