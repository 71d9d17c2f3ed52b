package types

import "strings"

// PrimitiveType is the value type a validator checks candidates against
type PrimitiveType int

const (
	NoType  PrimitiveType = iota // NoType denotes a validator without a usable type
	Int8                         // Int8 is a signed 1-byte integer (s1)
	Uint8                        // Uint8 is an unsigned 1-byte integer (u1)
	Int16                        // Int16 is a signed 2-byte integer (s2)
	Uint16                       // Uint16 is an unsigned 2-byte integer (u2)
	Int32                        // Int32 is a signed 4-byte integer (s4)
	Uint32                       // Uint32 is an unsigned 4-byte integer (u4)
	Int64                        // Int64 is a signed 8-byte integer (s8)
	Uint64                       // Uint64 is an unsigned 8-byte integer (u8)
	Float32                      // Float32 is a single precision float (f)
	Float64                      // Float64 is a double precision float (d)
	Text                         // Text is an arbitrary string (t)
)

var primitiveCodes = map[PrimitiveType]string{
	Int8:    "s1",
	Uint8:   "u1",
	Int16:   "s2",
	Uint16:  "u2",
	Int32:   "s4",
	Uint32:  "u4",
	Int64:   "s8",
	Uint64:  "u8",
	Float32: "f",
	Float64: "d",
	Text:    "t",
}

var primitiveNames = map[PrimitiveType]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Text:    "text",
}

// String returns the string representation of a PrimitiveType
func (p PrimitiveType) String() string {
	if s, ok := primitiveNames[p]; ok {
		return s
	}

	return "none"
}

// Code returns the short textual code of a PrimitiveType (e.g. "s4" or "t")
func (p PrimitiveType) Code() string {
	return primitiveCodes[p]
}

// IsInteger reports whether p is one of the eight integer widths
func (p PrimitiveType) IsInteger() bool {
	return p >= Int8 && p <= Uint64
}

// IsNumeric reports whether p is an integer or floating point type
func (p PrimitiveType) IsNumeric() bool {
	return p >= Int8 && p <= Float64
}

// ParsePrimitiveType maps a short code to its PrimitiveType. The lookup is case-insensitive.
func ParsePrimitiveType(code string) (PrimitiveType, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for t, c := range primitiveCodes {
		if c == code {
			return t, true
		}
	}

	return NoType, false
}

// Operator is the comparison a validator applies to a candidate
type Operator int

const (
	NoOp Operator = iota // NoOp only performs the domain check
	LT                   // LT accepts v < a
	LE                   // LE accepts v <= a
	GT                   // GT accepts v > a
	GE                   // GE accepts v >= a
	GTLT                 // GTLT accepts a < v < b
	GELT                 // GELT accepts a <= v < b
	GELE                 // GELE accepts a <= v <= b
	GTLE                 // GTLE accepts a < v <= b
	IN                   // IN accepts v equal to any operand
)

var operatorCodes = map[Operator]string{
	LT:   "lt",
	LE:   "le",
	GT:   "gt",
	GE:   "ge",
	GTLT: "gtlt",
	GELT: "gelt",
	GELE: "gele",
	GTLE: "gtle",
	IN:   "in",
}

var operatorSymbols = map[Operator]string{
	NoOp: "NOOP",
	LT:   "LT",
	LE:   "LE",
	GT:   "GT",
	GE:   "GE",
	GTLT: "GTLT",
	GELT: "GELT",
	GELE: "GELE",
	GTLE: "GTLE",
	IN:   "IN",
}

// String returns the upper-case name of an Operator
func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}

	return "unknown"
}

// Code returns the lower-case textual code of an Operator
func (o Operator) Code() string {
	return operatorCodes[o]
}

// Arity returns the minimum number of operands the operator needs and whether that count is exact.
// IN needs at least one operand, NoOp none.
func (o Operator) Arity() (n int, exact bool) {
	switch o {
	case LT, LE, GT, GE:
		return 1, true
	case GTLT, GELT, GELE, GTLE:
		return 2, true
	case IN:
		return 1, false
	default:
		return 0, true
	}
}

// ParseOperator maps a textual code to its Operator. The lookup is case-insensitive.
func ParseOperator(code string) (Operator, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for o, c := range operatorCodes {
		if c == code {
			return o, true
		}
	}

	return NoOp, false
}

// Layout selects how usage descriptions are arranged next to the flag column
type Layout int

const (
	Align      Layout = iota // Align starts every description at the widest flag column
	Interleave               // Interleave puts the description on the line below the flags
	Stagger                  // Stagger starts each description right after its own flags
)

// String returns the string representation of a Layout
func (l Layout) String() string {
	switch l {
	case Interleave:
		return "interleave"
	case Stagger:
		return "stagger"
	default:
		return "align"
	}
}

// ParseLayout returns the Layout named by name (case-insensitive)
func ParseLayout(name string) (Layout, bool) {
	for _, l := range []Layout{Align, Interleave, Stagger} {
		if strings.EqualFold(l.String(), name) {
			return l, true
		}
	}

	return Align, false
}

// Format is a structured serialization format for parser snapshots
type Format int

const (
	JSON Format = iota
	YAML
	TOML
)

// String returns the string representation of a Format
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "json"
	}
}

// ParseFormat returns the Format named by name (case-insensitive). "yml" is accepted for YAML.
func ParseFormat(name string) (Format, bool) {
	if strings.EqualFold(name, "yml") {
		return YAML, true
	}
	for _, f := range []Format{JSON, YAML, TOML} {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}

	return JSON, false
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
