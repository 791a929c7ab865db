package usecase

import (
	"regexp"
	"strings"

	"github.com/foodrecall/backend/internal/domain"
)

// Package-level compiled regex patterns for input validation
var (
	// Matches C0 and C1 control characters (0x00-0x1F, 0x7F-0x9F)
	controlCharsRegex = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)

	// A valid barcode after sanitization: digits and hyphens only
	barcodeRegex = regexp.MustCompile(`^[0-9-]+$`)

	// Characters stripped from free-text queries before they reach upstream APIs
	unsafeQueryCharsRegex = regexp.MustCompile(`[<>'"]`)
)

// Barcode length bounds after sanitization. Most retail barcodes are 8-14
// digits; the window is kept wider to admit GTIN-ish variants with hyphens.
const (
	minBarcodeLength = 6
	maxBarcodeLength = 20
)

// maxQueryLength caps free-text search input
const maxQueryLength = 100

// ValidateBarcode trims and strips control characters from raw barcode input,
// then rejects anything that is not 6-20 characters of digits and hyphens.
// Returns the sanitized barcode, or domain.ErrInvalidBarcode.
func ValidateBarcode(raw string) (string, error) {
	sanitized := controlCharsRegex.ReplaceAllString(strings.TrimSpace(raw), "")

	if len(sanitized) < minBarcodeLength || len(sanitized) > maxBarcodeLength {
		return "", domain.ErrInvalidBarcode
	}

	if !barcodeRegex.MatchString(sanitized) {
		return "", domain.ErrInvalidBarcode
	}

	return sanitized, nil
}

// ValidateSearchQuery trims raw query input, strips control characters and
// <>'" and truncates to 100 characters. It never rejects: all-invalid input
// degrades to an empty string, which callers treat as "no query entered".
func ValidateSearchQuery(raw string) string {
	sanitized := strings.TrimSpace(raw)
	sanitized = unsafeQueryCharsRegex.ReplaceAllString(sanitized, "")
	sanitized = controlCharsRegex.ReplaceAllString(sanitized, "")

	if runes := []rune(sanitized); len(runes) > maxQueryLength {
		sanitized = string(runes[:maxQueryLength])
	}

	return sanitized
}
