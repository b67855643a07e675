package serializer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dbsmedya/storegen/internal/record"
)

// encodeXML renders the batch as hierarchical markup: a root element named
// rootTag, one itemTag child per record, and one grandchild per field.
// Booleans render as lowercase true/false, all other scalars via their
// string form; nested record lists become nested elements.
func encodeXML(batch *record.Batch, rootTag, itemTag string) ([]byte, error) {
	if rootTag == "" {
		rootTag = "records"
	}
	if itemTag == "" {
		itemTag = "record"
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, "<%s>\n", rootTag)

	for _, rec := range batch.Records {
		if err := writeRecordXML(&buf, rec, itemTag, 1); err != nil {
			return nil, &FormatError{Format: FormatXML, Reason: err.Error()}
		}
	}

	fmt.Fprintf(&buf, "</%s>\n", rootTag)
	return buf.Bytes(), nil
}

func writeRecordXML(buf *bytes.Buffer, rec *record.Record, tag string, depth int) error {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%s<%s>\n", indent, tag)

	fieldIndent := strings.Repeat("  ", depth+1)
	for _, field := range rec.Fields() {
		value, _ := rec.Get(field)
		switch t := value.(type) {
		case *record.Record:
			if err := writeRecordXML(buf, t, field, depth+1); err != nil {
				return err
			}
		case []*record.Record:
			fmt.Fprintf(buf, "%s<%s>\n", fieldIndent, field)
			child := singularize(field)
			for _, nested := range t {
				if err := writeRecordXML(buf, nested, child, depth+2); err != nil {
					return err
				}
			}
			fmt.Fprintf(buf, "%s</%s>\n", fieldIndent, field)
		default:
			cell, err := CellString(value)
			if err != nil {
				return err
			}
			fmt.Fprintf(buf, "%s<%s>", fieldIndent, field)
			if err := xml.EscapeText(buf, []byte(cell)); err != nil {
				return err
			}
			fmt.Fprintf(buf, "</%s>\n", field)
		}
	}

	fmt.Fprintf(buf, "%s</%s>\n", indent, tag)
	return nil
}

// singularize derives a child element name from a plural field name.
func singularize(plural string) string {
	switch {
	case strings.HasSuffix(plural, "ies"):
		return strings.TrimSuffix(plural, "ies") + "y"
	case strings.HasSuffix(plural, "s") && len(plural) > 1:
		return strings.TrimSuffix(plural, "s")
	default:
		return plural + "_entry"
	}
}
