package model

import (
	"math"
	"strings"
)

// numberLiteral matches json.Number as produced by decoders running with
// UseNumber.
type numberLiteral interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// AsNumber reports the numeric value of v. Booleans and strings are never
// numbers.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return finite(float64(n))
	case float64:
		return finite(n)
	case numberLiteral:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

// AsInt reports the integer value of v within the int32 range. Floating
// point values are accepted only when they carry no fractional part, since
// generic JSON decoding yields float64 for every number. Number literals must
// be written as integers: "2.0" and "2e0" are not indices.
func AsInt(v any) (int, bool) {
	if !IsIntegral(v) {
		return 0, false
	}
	if lit, ok := v.(numberLiteral); ok {
		i, err := lit.Int64()
		if err != nil {
			return 0, false
		}
		return fitInt(float64(i))
	}
	f, _ := AsNumber(v)
	return fitInt(f)
}

// IsIntegral reports whether v is a whole number, with no range limit.
func IsIntegral(v any) bool {
	if lit, ok := v.(numberLiteral); ok {
		if !integerLiteral(lit.String()) {
			return false
		}
		_, ok := AsNumber(v)
		return ok
	}
	f, ok := AsNumber(v)
	return ok && f == math.Trunc(f)
}

func integerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, ".eE")
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func fitInt(f float64) (int, bool) {
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
