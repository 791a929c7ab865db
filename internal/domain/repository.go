package domain

import "context"

// RecallSource is one per-country recall data source. The shipped adapters
// absorb their own network and parse failures and report them as an empty
// slice with a nil error; the orchestrator treats any non-nil error as
// outside that contract and fails the whole lookup.
type RecallSource interface {
	FetchByBarcode(ctx context.Context, barcode string) ([]RecallRecord, error)
	SearchByText(ctx context.Context, query string) ([]RecallRecord, error)
}

// ProductClient looks up display metadata for a barcode in the shared open
// product database. Implementations never fail: on any upstream error they
// return a placeholder ProductInfo carrying only the barcode and a generated
// name.
type ProductClient interface {
	FetchProductInfo(ctx context.Context, barcode string) (*ProductInfo, error)
}

// KeyValueStore is the flat keyed persistence surface used by the recall
// cache and nothing else. Expiry is not a store concern: the cache layer
// decides validity from the payload it stored.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	RemoveMany(ctx context.Context, keys []string) error
}
