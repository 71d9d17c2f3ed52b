package util

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ToInt64 converts s permissively: integers use base detection, floating point
// text is truncated toward zero and malformed text yields 0.
func ToInt64(s string) int64 {
	num, ok := ParseNumeric(s)
	switch {
	case !ok:
		return 0
	case num.IsInt:
		return num.Int
	case math.IsNaN(num.Float):
		return 0
	case num.Float >= math.MaxInt64:
		return math.MaxInt64
	case num.Float <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(num.Float)
	}
}

// ToUint64 converts s permissively. Negative integers wrap around like a C
// cast and malformed text yields 0.
func ToUint64(s string) uint64 {
	num, ok := ParseNumeric(s)
	switch {
	case !ok:
		return 0
	case num.IsUint:
		return num.Uint
	case num.IsInt:
		return uint64(num.Int)
	case math.IsNaN(num.Float) || num.Float <= 0:
		return 0
	case num.Float >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(num.Float)
	}
}

// ToFloat64 converts s permissively; malformed text yields 0.
func ToFloat64(s string) float64 {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil || isRange(err) {
		return f
	}

	// hexadecimal and octal integer literals
	if num, ok := ParseNumeric(s); ok && num.IsInt {
		if num.IsUint {
			return float64(num.Uint)
		}
		return float64(num.Int)
	}

	return 0
}

// ToFloat32 converts s permissively; malformed text yields 0.
func ToFloat32(s string) float32 {
	return float32(ToFloat64(s))
}

// ToTime converts s using dateparse, reading zone-less text as UTC; malformed text yields the zero time.
func ToTime(s string) time.Time {
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}
	}

	return t
}

// ToBool converts s with strconv.ParseBool; malformed text yields false.
func ToBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// ConvertAll applies convert to every element of values
func ConvertAll[T any](values []string, convert func(string) T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = convert(v)
	}

	return out
}
