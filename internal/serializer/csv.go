package serializer

import (
	"bytes"
	"encoding/csv"

	"github.com/dbsmedya/storegen/internal/record"
)

// encodeCSV renders the batch as CSV. The header row is the first record's
// field names in insertion order; every record is expected to share that
// field set. Nested structures are flattened by JSON-encoding them into
// their cell.
func encodeCSV(batch *record.Batch) ([]byte, error) {
	if batch.Len() == 0 {
		return nil, &FormatError{
			Format: FormatCSV,
			Reason: "empty batch has no derivable schema for a header row",
		}
	}

	header := batch.Records[0].Fields()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, &FormatError{Format: FormatCSV, Reason: err.Error()}
	}

	row := make([]string, len(header))
	for _, rec := range batch.Records {
		for i, field := range header {
			value, _ := rec.Get(field)
			cell, err := CellString(value)
			if err != nil {
				return nil, &FormatError{Format: FormatCSV, Reason: err.Error()}
			}
			row[i] = cell
		}
		if err := w.Write(row); err != nil {
			return nil, &FormatError{Format: FormatCSV, Reason: err.Error()}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, &FormatError{Format: FormatCSV, Reason: err.Error()}
	}
	return buf.Bytes(), nil
}
