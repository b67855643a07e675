package serializer

import (
	"encoding/json"

	"github.com/dbsmedya/storegen/internal/record"
)

// encodeJSON renders the batch as an indented JSON array. Field order and
// type coercion (timestamps to RFC3339 strings, money to two-place
// numbers) are handled by Record's own marshaler.
func encodeJSON(batch *record.Batch) ([]byte, error) {
	out, err := json.MarshalIndent(batch.Records, "", "  ")
	if err != nil {
		return nil, &FormatError{Format: FormatJSON, Reason: err.Error()}
	}
	return out, nil
}
