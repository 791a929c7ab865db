package domain

import "errors"

var (
	// ErrInvalidBarcode is returned when barcode input fails validation
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrEmptyQuery is returned when a search query sanitizes down to nothing
	ErrEmptyQuery = errors.New("no query entered")

	// ErrCacheMiss is returned when a lookup result is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRecallCheckFailed is the terminal error for the barcode lookup path
	ErrRecallCheckFailed = errors.New("failed to check recall status")

	// ErrRecallSearchFailed is the terminal error for the text search path
	ErrRecallSearchFailed = errors.New("failed to search recalls")
)
