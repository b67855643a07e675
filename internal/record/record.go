// Package record contains the generic record and batch types shared by the
// entity builders and the serializer. Records keep their fields in insertion
// order and hold typed values internally; coercion to plain strings happens
// only at the serialization boundary.
package record

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/shopspring/decimal"
)

// Record is a single generated entity: an ordered mapping from field name
// to typed value. A record is immutable once its builder returns it; Set is
// only called during construction.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New creates an empty record.
func New() *Record {
	return &Record{fields: orderedmap.NewOrderedMap[string, any]()}
}

// Set assigns a field value, appending the field to the record's field
// order on first assignment. Returns the record for chaining.
func (r *Record) Set(field string, value any) *Record {
	r.fields.Set(field, value)
	return r
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(field string) (any, bool) {
	return r.fields.Get(field)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	return r.fields.Keys()
}

// Values returns the field values in insertion order.
func (r *Record) Values() []any {
	values := make([]any, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value)
	}
	return values
}

// MarshalJSON encodes the record as a JSON object with fields in insertion
// order. Timestamps render as RFC3339 strings, monetary values as plain
// two-place numbers.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := r.fields.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := marshalValue(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	switch t := v.(type) {
	case time.Time:
		return json.Marshal(t.UTC().Format(time.RFC3339))
	case decimal.Decimal:
		// Unquoted fixed-point number, always two places.
		return []byte(t.StringFixed(2)), nil
	case *Record:
		return t.MarshalJSON()
	case []*Record:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, rec := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := rec.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}
