package tabfmt

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// record is one row as a JSON object with keys in column order.
type record struct {
	keys   []string
	values []any
}

func (t DisplayTable) records() []record {
	out := make([]record, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = record{keys: t.Names, values: row}
	}
	return out
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var v any
		if i < len(r.values) {
			v = r.values[i]
		}
		val, err := json.Marshal(jsonValue(v))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue maps cells JSON cannot represent natively.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil
		}
	case decimal.Decimal:
		return json.Number(x.String())
	case time.Duration:
		return x.String()
	}
	return v
}

func writeJSON(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	enc := json.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	return enc.Encode(t.records())
}
