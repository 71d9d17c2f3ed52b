package util

import (
	"errors"
	"strconv"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number is the result of ParseNumeric. OutOfRange is set when the literal is
// well-formed but does not fit the parsed representation; Int, Uint or Float
// then hold the saturated value.
type Number struct {
	Int        int64
	Uint       uint64
	Float      float64
	IsInt      bool
	IsUint     bool
	IsFloat    bool
	IsNegative bool
	OutOfRange bool
}

// ParseNumeric parses s as a base-detecting integer ("0x", "0o", "0b" and leading-zero octal prefixes
// are honoured) and falls back to a floating point parse. Surrounding whitespace is ignored.
func ParseNumeric(s string) (n Number, ok bool) {
	s = strings.TrimSpace(s)

	if i, err := strconv.ParseInt(s, 0, 64); err == nil || isRange(err) {
		n.Int = i
		n.IsInt = true
		n.IsNegative = i < 0
		n.OutOfRange = err != nil
		if i >= 0 {
			// values above MaxInt64 are still representable as unsigned
			if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, 64); err == nil || isRange(err) {
				n.Uint = u
				n.IsUint = true
				n.OutOfRange = err != nil
			}
		}
		return n, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil || isRange(err) {
		n.Float = f
		n.IsFloat = true
		n.IsNegative = f < 0
		n.OutOfRange = err != nil
		return n, true
	}

	return n, false
}

func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

func Max[T Numeric](x, y T) T {
	if x > y {
		return x
	}
	return y
}
