package tabfmt

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Kind is the value type of a column.
type Kind int

const (
	KindAny Kind = iota // mixed or unknown
	KindString
	KindInt
	KindBool
	KindFloat
)

var kindNames = [...]string{"any", "string", "int", "bool", "float"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Numeric reports whether k holds integers or floats.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

// KindOf returns the Kind of a single cell value. Nil and unrecognized values
// report KindAny.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case bool:
		return KindBool
	case float32, float64, decimal.Decimal:
		return KindFloat
	default:
		return KindAny
	}
}

// inferKind folds the kinds of non-nil values. Mixed kinds collapse to
// KindAny.
func inferKind(values iter.Seq[any]) Kind {
	kind, seen := KindAny, false
	for v := range values {
		if v == nil {
			continue
		}
		k := KindOf(v)
		if !seen {
			kind, seen = k, true
		} else if k != kind {
			return KindAny
		}
	}
	return kind
}
