package serializer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dbsmedya/storegen/internal/record"
)

// CellString coerces a typed record value to its flat string form for the
// tabular and markup formats. Nested structures are re-encoded as JSON so
// they survive a single cell.
func CellString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Time:
		return t.UTC().Format(time.RFC3339), nil
	case decimal.Decimal:
		return t.StringFixed(2), nil
	case *record.Record, []*record.Record:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprintf("%v", t), nil
	}
}
