package tabfmt

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places used when callers have no
// preference.
const DefaultPrecision = 1

type threshold struct {
	limit  float64
	suffix string
}

// Descending; the first limit not exceeding |v| wins.
var magnitudeThresholds = []threshold{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

var durationThresholds = []threshold{
	{3600, "hr"},
	{60, "min"},
	{1, "s"},
	{1e-3, "ms"},
	{1e-6, "μs"},
	{1e-9, "ns"},
}

// FormatMagnitude renders a number with a thousand/million/billion/trillion
// suffix: 1500 becomes "1.5 K" and 2_500_000 at precision 2 becomes "2.50 M".
// Zero is "0". Below one thousand, integers print bare and floats print with
// precision decimal places.
//
// Any Go integer or float type and decimal.Decimal are accepted. Other values
// fail with [ErrTypeKind]; a negative precision fails with
// [ErrInvalidArgument].
func FormatMagnitude(value any, precision int) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("%w: negative precision %d", ErrInvalidArgument, precision)
	}
	f, integer, ok := toNumber(value)
	if !ok {
		return "", fmt.Errorf("%w: cannot format %T as a magnitude", ErrTypeKind, value)
	}
	if f == 0 {
		return "0", nil
	}
	if s, ok := scale(f, precision, magnitudeThresholds); ok {
		return s, nil
	}
	if integer != "" {
		return integer, nil
	}
	return strconv.FormatFloat(f, 'f', precision, 64), nil
}

// FormatDuration renders a number of seconds in the largest fitting unit out
// of hr, min, s, ms, μs and ns: 90 becomes "1.5 min". Zero is "0 s", and
// values under a nanosecond fall back to seconds.
//
// A time.Duration is converted to seconds. Other accepted types match
// [FormatMagnitude].
func FormatDuration(value any, precision int) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("%w: negative precision %d", ErrInvalidArgument, precision)
	}
	var f float64
	if d, ok := value.(time.Duration); ok {
		f = d.Seconds()
	} else {
		var ok bool
		if f, _, ok = toNumber(value); !ok {
			return "", fmt.Errorf("%w: cannot format %T as a duration", ErrTypeKind, value)
		}
	}
	if f == 0 {
		return "0 s", nil
	}
	if s, ok := scale(f, precision, durationThresholds); ok {
		return s, nil
	}
	return strconv.FormatFloat(f, 'f', precision, 64) + " s", nil
}

func scale(f float64, precision int, ladder []threshold) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	abs := math.Abs(f)
	for _, t := range ladder {
		if abs >= t.limit {
			return strconv.FormatFloat(f/t.limit, 'f', precision, 64) + " " + t.suffix, true
		}
	}
	return "", false
}

// toNumber widens v to float64. For integer types it also returns the exact
// decimal text.
func toNumber(v any) (f float64, integer string, ok bool) {
	switch n := v.(type) {
	case int:
		return float64(n), strconv.Itoa(n), true
	case int8:
		return float64(n), strconv.FormatInt(int64(n), 10), true
	case int16:
		return float64(n), strconv.FormatInt(int64(n), 10), true
	case int32:
		return float64(n), strconv.FormatInt(int64(n), 10), true
	case int64:
		return float64(n), strconv.FormatInt(n, 10), true
	case uint:
		return float64(n), strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return float64(n), strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return float64(n), strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return float64(n), strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return float64(n), strconv.FormatUint(n, 10), true
	case float32:
		return float64(n), "", true
	case float64:
		return n, "", true
	case decimal.Decimal:
		return n.InexactFloat64(), "", true
	default:
		return 0, "", false
	}
}

// TickFormatter matches the tick label callbacks of charting libraries. The
// position argument is accepted and ignored.
type TickFormatter func(value float64, position int) string

// MagnitudeTicks returns a TickFormatter backed by [FormatMagnitude]. A
// negative precision falls back to [DefaultPrecision].
func MagnitudeTicks(precision int) TickFormatter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return func(value float64, _ int) string {
		s, _ := FormatMagnitude(value, precision)
		return s
	}
}

// DurationTicks returns a TickFormatter backed by [FormatDuration].
func DurationTicks(precision int) TickFormatter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return func(value float64, _ int) string {
		s, _ := FormatDuration(value, precision)
		return s
	}
}

// CellFormatter turns a cell into display text. col is the column index in
// the DisplayTable and kind its column kind.
type CellFormatter func(col int, kind Kind, value any) string

// HumanizeNumbers formats cells of numeric columns with [FormatMagnitude] and
// everything else with the default cell text.
func HumanizeNumbers(precision int) CellFormatter {
	return func(col int, kind Kind, value any) string {
		if kind.Numeric() {
			if s, err := FormatMagnitude(value, precision); err == nil {
				return s
			}
		}
		return cellText(value)
	}
}

// HumanizeDurations formats cells holding seconds with [FormatDuration]. With
// no cols every numeric column is treated as seconds.
func HumanizeDurations(precision int, cols ...int) CellFormatter {
	selected := make(map[int]bool, len(cols))
	for _, c := range cols {
		selected[c] = true
	}
	return func(col int, kind Kind, value any) string {
		if (len(cols) == 0 && kind.Numeric()) || selected[col] {
			if s, err := FormatDuration(value, precision); err == nil {
				return s
			}
		}
		return cellText(value)
	}
}

// cellText is the default rendering of a cell value.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	if _, integer, ok := toNumber(v); ok && integer != "" {
		return integer
	}
	return fmt.Sprint(v)
}
