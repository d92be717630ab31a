package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds
type ValueKind uint8

const (
	KindMissing ValueKind = iota
	KindText
	KindNumeric
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	default:
		return "missing"
	}
}

// Value is a single cell: numeric, text, or missing
type Value struct {
	kind ValueKind
	text string
	num  float64
}

// NewTextValue creates a text value. The empty string is a missing value.
func NewTextValue(s string) Value {
	if s == "" {
		return Value{kind: KindMissing}
	}
	return Value{kind: KindText, text: s}
}

// NewNumericValue creates a numeric value. NaN and infinities are kept as-is.
func NewNumericValue(n float64) Value {
	return Value{kind: KindNumeric, num: n}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{kind: KindMissing}
}

// Kind returns the variant held by v
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsMissing reports whether v counts as missing for statistics and operators
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// IsNumeric returns true if the value is stored as a number
func (v Value) IsNumeric() bool {
	return v.kind == KindNumeric
}

// IsText returns true if the value is stored as text
func (v Value) IsText() bool {
	return v.kind == KindText
}

// AsFloat64 coerces v to a finite number. Text is parsed after trimming
// surrounding whitespace; missing values and NaN/Inf never coerce.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindNumeric:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case KindText:
		return ParseNumber(v.text)
	default:
		return 0, false
	}
}

// String returns the display form of the value; missing values render as ""
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumeric:
		return FormatNumber(v.num)
	default:
		return ""
	}
}

// Equal compares kind and payload. NaN equals NaN so that rows carrying the
// same propagated NaN are still duplicates of each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumeric:
		if math.IsNaN(v.num) && math.IsNaN(o.num) {
			return true
		}
		return v.num == o.num
	default:
		return true
	}
}

// key is a kind-tagged encoding used for hashing rows
func (v Value) key() string {
	switch v.kind {
	case KindText:
		return "t" + v.text
	case KindNumeric:
		return "n" + FormatNumber(v.num)
	default:
		return "m"
	}
}

// MarshalJSON writes numbers as JSON numbers and text as strings.
// Missing values and non-finite numbers have no JSON form and become null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumeric:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return []byte(FormatNumber(v.num)), nil
	default:
		return []byte("null"), nil
	}
}

// ParseNumber parses a locale-agnostic decimal, integer or scientific
// literal. Only finite results are accepted.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a float the shortest way that round-trips, switching
// to exponent notation for very large and very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
