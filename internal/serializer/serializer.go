// Package serializer renders entity batches as JSON, CSV, or XML without
// losing scalar type semantics. Records arrive with typed values; all
// coercion to text happens here, at the boundary.
package serializer

import (
	"fmt"

	"github.com/dbsmedya/storegen/internal/record"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// Options control serialization. RootTag and ItemTag are only used by the
// XML format: the root element wraps the batch and one ItemTag element
// wraps each record.
type Options struct {
	Format  string
	RootTag string
	ItemTag string
}

// FormatError reports that serialization cannot proceed, e.g. a tabular
// format with no derivable schema. No partial output accompanies it.
type FormatError struct {
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot serialize to %s: %s", e.Format, e.Reason)
}

// Supported reports whether the given format name is recognized.
func Supported(format string) bool {
	switch format {
	case FormatJSON, FormatCSV, FormatXML:
		return true
	}
	return false
}

// ContentType returns the MIME type for a supported format.
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatXML:
		return "application/xml"
	default:
		return "application/json"
	}
}

// Extension returns the file extension for a supported format.
func Extension(format string) string {
	return format
}

// Serialize renders the batch in the requested format.
func Serialize(batch *record.Batch, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatJSON:
		return encodeJSON(batch)
	case FormatCSV:
		return encodeCSV(batch)
	case FormatXML:
		return encodeXML(batch, opts.RootTag, opts.ItemTag)
	default:
		return nil, &FormatError{Format: opts.Format, Reason: "unsupported format"}
	}
}
