package validation

import (
	"log/slog"
	"strings"

	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/types"
)

// NewFromSpec builds a validator from its textual form: a type code (s1, u1,
// s2, u2, s4, u4, s8, u8, f, d, t), an operator code (lt, le, gt, ge, gtlt,
// gelt, gele, gtle, in, or empty for none) and a comma separated operand list.
//
// An unknown type or operator code is logged and leaves that part inert: an
// unknown type accepts every value and an unknown operator only performs the
// domain check. Operands which are not numeric for a numeric type convert to 0.
//
//	v := validation.NewFromSpec("t", "in", "red,green,blue", true)
func NewFromSpec(typeCode, opCode, list string, insensitive bool) *Validator {
	return NewFromSpecWithLogger(nil, typeCode, opCode, list, insensitive)
}

// NewFromSpecWithLogger is NewFromSpec writing its diagnostics to logger (slog.Default() when nil)
func NewFromSpecWithLogger(logger *slog.Logger, typeCode, opCode, list string, insensitive bool) *Validator {
	v := &Validator{id: -1, logger: logger}

	typ, ok := types.ParsePrimitiveType(typeCode)
	if !ok {
		v.log().Warn("unknown validator datatype", "type", typeCode)
	}

	op := types.NoOp
	if strings.TrimSpace(opCode) != "" {
		if op, ok = types.ParseOperator(opCode); !ok {
			v.log().Warn("unknown validator operation", "op", opCode)
		}
	}

	items := util.SplitDelim(list, ',')
	for _, item := range items {
		if typ.IsNumeric() {
			if _, ok := util.ParseNumeric(item); !ok {
				v.log().Warn("validator operand is not numeric", "type", typ, "operand", item)
			}
		}
	}

	switch typ {
	case types.Int8:
		v.operands = operands[int8](util.ConvertAll(items, signed[int8]))
	case types.Uint8:
		v.operands = operands[uint8](util.ConvertAll(items, unsigned[uint8]))
	case types.Int16:
		v.operands = operands[int16](util.ConvertAll(items, signed[int16]))
	case types.Uint16:
		v.operands = operands[uint16](util.ConvertAll(items, unsigned[uint16]))
	case types.Int32:
		v.operands = operands[int32](util.ConvertAll(items, signed[int32]))
	case types.Uint32:
		v.operands = operands[uint32](util.ConvertAll(items, unsigned[uint32]))
	case types.Int64:
		v.operands = operands[int64](util.ConvertAll(items, util.ToInt64))
	case types.Uint64:
		v.operands = operands[uint64](util.ConvertAll(items, util.ToUint64))
	case types.Float32:
		v.operands = operands[float32](util.ConvertAll(items, util.ToFloat32))
	case types.Float64:
		v.operands = operands[float64](util.ConvertAll(items, util.ToFloat64))
	case types.Text:
		if insensitive {
			items = util.ConvertAll(items, fold)
		}
		v.operands = operands[string](items)
		v.insensitive = insensitive
	default:
		// an inert validator keeps neither operator nor operands
		return v
	}

	v.typ = typ
	v.op = op

	return v
}

func signed[T int8 | int16 | int32](s string) T {
	return T(util.ToInt64(s))
}

func unsigned[T uint8 | uint16 | uint32](s string) T {
	return T(util.ToUint64(s))
}
