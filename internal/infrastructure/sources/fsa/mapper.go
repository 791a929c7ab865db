package fsa

import (
	"fmt"
	"strings"
	"time"

	"github.com/foodrecall/backend/internal/domain"
)

// searchResponse is the envelope of the food-alerts search endpoint
type searchResponse struct {
	Items []alertItem `json:"items"`
}

// alertItem is one raw FSA alert. The feed is lenient about field names, so
// items are decoded as loose maps and resolved through per-field candidate
// key chains rather than a fixed struct.
type alertItem map[string]any

// Candidate source keys per target field, evaluated in order; the first
// present non-empty value wins.
var (
	nameKeys        = []string{"title", "productName"}
	dateKeys        = []string{"created", "alertDate"}
	reasonKeys      = []string{"reason", "problem"}
	descriptionKeys = []string{"description", "productDetails"}
	actionKeys      = []string{"actionTaken", "consumerAdvice"}
)

// mapItems converts raw FSA alerts into normalized recall records. barcode is
// attached on the barcode lookup path and left empty for text search.
func mapItems(items []alertItem, barcode string) []domain.RecallRecord {
	recalls := make([]domain.RecallRecord, 0, len(items))

	for _, item := range items {
		recall := domain.RecallRecord{
			ID:          itemID(item),
			ProductName: firstString(item, nameKeys...),
			Brand:       stringField(item, "brand"),
			Barcode:     barcode,
			RecallDate:  itemDate(item),
			Reason:      firstString(item, reasonKeys...),
			Risk:        stringField(item, "riskStatement"),
			Description: firstString(item, descriptionKeys...),
			Actions:     firstString(item, actionKeys...),
			ImageURL:    stringField(item, "productImageUrl"),
		}

		if retailers := stringField(item, "retailers"); retailers != "" {
			recall.Distributors = strings.Split(retailers, ",")
		}
		if batches := stringField(item, "batchCodes"); batches != "" {
			recall.BatchNumbers = strings.Split(batches, ",")
		}

		recalls = append(recalls, recall)
	}

	return recalls
}

// itemID returns the source id, or synthesizes a timestamp-based one. FSA ids
// are only used as list-rendering keys, never for cross-request identity, so
// a synthesized id is acceptable.
func itemID(item alertItem) string {
	if id := stringField(item, "id"); id != "" {
		return id
	}
	return fmt.Sprintf("uk-%d", time.Now().UnixMilli())
}

// itemDate resolves the alert date chain, defaulting to the current time
func itemDate(item alertItem) string {
	if date := firstString(item, dateKeys...); date != "" {
		return date
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// firstString returns the first present non-empty string among the candidate
// keys
func firstString(item alertItem, keys ...string) string {
	for _, key := range keys {
		if v := stringField(item, key); v != "" {
			return v
		}
	}
	return ""
}

// stringField reads a single key as a string, tolerating absent keys and
// non-string values
func stringField(item alertItem, key string) string {
	v, ok := item[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
