// Package validation implements typed value validators: a primitive type
// domain check optionally followed by a range or set-membership comparison.
package validation

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/types"
	"golang.org/x/text/cases"
)

// Operand is the set of native types a validator can compare against
type Operand interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64 | string
}

// operandSet is the closed set of typed operand payloads; the only
// implementation is operands[T] for each Operand T.
type operandSet interface {
	Len() int
	Strings() []string
	primitive() types.PrimitiveType
}

type operands[T Operand] []T

func (o operands[T]) Len() int {
	return len(o)
}

func (o operands[T]) Strings() []string {
	out := make([]string, len(o))
	for i, v := range o {
		out[i] = formatOperand(v)
	}

	return out
}

func (o operands[T]) primitive() types.PrimitiveType {
	return primitiveOf[T]()
}

func primitiveOf[T Operand]() types.PrimitiveType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return types.Int8
	case uint8:
		return types.Uint8
	case int16:
		return types.Int16
	case uint16:
		return types.Uint16
	case int32:
		return types.Int32
	case uint32:
		return types.Uint32
	case int64:
		return types.Int64
	case uint64:
		return types.Uint64
	case float32:
		return types.Float32
	case float64:
		return types.Float64
	default:
		return types.Text
	}
}

// Validator decides whether a textual value is acceptable for a primitive type
// and an optional comparison. The zero value accepts everything.
type Validator struct {
	id          int
	typ         types.PrimitiveType
	op          types.Operator
	operands    operandSet
	insensitive bool
	quiet       bool
	logger      *slog.Logger
}

// New returns a validator whose primitive type is derived from T. Values are copied.
//
//	v := validation.New[int32](types.GELT, 0, 10) // accepts 0..9
func New[T Operand](op types.Operator, values ...T) *Validator {
	return &Validator{
		id:       -1,
		typ:      primitiveOf[T](),
		op:       op,
		operands: operands[T](append([]T{}, values...)),
	}
}

// NewText returns a text validator. With insensitive set, the values and every
// candidate are case-folded before comparison.
func NewText(op types.Operator, insensitive bool, values ...string) *Validator {
	v := New[string](op, values...)
	v.insensitive = insensitive
	if insensitive {
		v.operands = operands[string](util.ConvertAll(values, fold))
	}

	return v
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// ID returns the identifier assigned by the parser that owns v, or -1
func (v *Validator) ID() int {
	return v.id
}

// SetID is called by the owning parser on registration
func (v *Validator) SetID(id int) {
	v.id = id
}

func (v *Validator) Type() types.PrimitiveType {
	return v.typ
}

func (v *Validator) Operator() types.Operator {
	return v.op
}

func (v *Validator) Insensitive() bool {
	return v.insensitive
}

// Operands returns the operands in textual form
func (v *Validator) Operands() []string {
	if v.operands == nil {
		return []string{}
	}

	return v.operands.Strings()
}

// Values returns the accepted values of a set-membership validator, or nil
func (v *Validator) Values() []string {
	if v.op != types.IN {
		return nil
	}

	return v.Operands()
}

func (v *Validator) Quiet() bool {
	return v.quiet
}

// SetQuiet suppresses the diagnostics IsValid writes to the logger
func (v *Validator) SetQuiet(quiet bool) {
	v.quiet = quiet
}

// Logger returns the logger set on v; nil means slog.Default()
func (v *Validator) Logger() *slog.Logger {
	return v.logger
}

func (v *Validator) SetLogger(logger *slog.Logger) {
	v.logger = logger
}

func (v *Validator) log() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}

	return slog.Default()
}

func (v *Validator) diag(msg string, args ...any) {
	if v.quiet {
		return
	}
	v.log().Warn(msg, append([]any{"validator", v.id}, args...)...)
}

// String is a diagnostic dump of the validator identity and configuration
func (v *Validator) String() string {
	size := 0
	if v.operands != nil {
		size = v.operands.Len()
	}

	return fmt.Sprintf("id=%d, op=%s, type=%s, size=%d, insensitive=%t", v.id, v.op, v.typ, size, v.insensitive)
}

// Print writes String to the logger at info level
func (v *Validator) Print() {
	v.log().Info(v.String())
}

// IsValid checks candidate against the domain of the primitive type and then
// against the operator. Text validators only check set membership.
func (v *Validator) IsValid(candidate string) bool {
	if v.typ == types.Text {
		if v.op != types.IN {
			return true
		}
		if v.insensitive {
			candidate = fold(candidate)
		}
		set, _ := v.operands.(operands[string])
		if len(set) == 0 {
			v.diag("missing operands for operator", "op", v.op, "value", candidate)
			return false
		}
		for _, s := range set {
			if s == candidate {
				return true
			}
		}
		return false
	}

	if !v.typ.IsNumeric() {
		return true
	}

	value, ok := v.checkDomain(candidate)
	if !ok {
		return false
	}

	if v.op == types.NoOp {
		return true
	}

	if v.operands != nil && v.operands.primitive() != v.typ {
		v.diag("operand type does not match validator type", "type", v.typ, "operands", v.operands.primitive())
		return false
	}

	n, exact := v.op.Arity()
	if v.operands == nil || v.operands.Len() < n {
		v.diag("missing operands for operator", "op", v.op, "value", candidate)
		return false
	}
	if exact && v.operands.Len() != n {
		v.diag("too many operands for operator", "op", v.op, "want", n, "got", v.operands.Len())
		return false
	}

	switch ops := v.operands.(type) {
	case operands[int8]:
		return evaluate(int8(value.i), v.op, ops)
	case operands[uint8]:
		return evaluate(uint8(value.u), v.op, ops)
	case operands[int16]:
		return evaluate(int16(value.i), v.op, ops)
	case operands[uint16]:
		return evaluate(uint16(value.u), v.op, ops)
	case operands[int32]:
		return evaluate(int32(value.i), v.op, ops)
	case operands[uint32]:
		return evaluate(uint32(value.u), v.op, ops)
	case operands[int64]:
		return evaluate(value.i, v.op, ops)
	case operands[uint64]:
		return evaluate(value.u, v.op, ops)
	case operands[float32]:
		return evaluate(float32(value.f), v.op, ops)
	case operands[float64]:
		return evaluate(value.f, v.op, ops)
	}

	return true
}

// candidate converted to the widest representation of its type class
type native struct {
	i int64
	u uint64
	f float64
}

var integerLimits = map[types.PrimitiveType][2]int64{
	types.Int8:   {math.MinInt8, math.MaxInt8},
	types.Uint8:  {0, math.MaxUint8},
	types.Int16:  {math.MinInt16, math.MaxInt16},
	types.Uint16: {0, math.MaxUint16},
	types.Int32:  {math.MinInt32, math.MaxInt32},
	types.Uint32: {0, math.MaxUint32},
	types.Int64:  {math.MinInt64, math.MaxInt64},
}

func (v *Validator) checkDomain(candidate string) (native, bool) {
	if v.typ == types.Float32 || v.typ == types.Float64 {
		return v.checkFloatDomain(candidate)
	}

	num, ok := util.ParseNumeric(candidate)
	if !ok || !num.IsInt {
		v.diag("value is not an integer", "type", v.typ, "value", candidate)
		return native{}, false
	}
	value := native{i: num.Int, u: num.Uint}

	if v.typ == types.Uint64 {
		if num.IsNegative || num.OutOfRange {
			v.diag("value outside datatype range", "type", v.typ, "value", candidate)
			return value, false
		}
		return value, true
	}

	// OutOfRange refers to the signed parse for negative values and to the unsigned parse otherwise
	limits := integerLimits[v.typ]
	if num.IsNegative && (num.OutOfRange || num.Int < limits[0]) {
		v.diag("value is less than datatype min", "type", v.typ, "value", candidate, "min", limits[0])
		return value, false
	}
	if !num.IsNegative && (num.OutOfRange || num.Uint > uint64(limits[1])) {
		v.diag("value is greater than datatype max", "type", v.typ, "value", candidate, "max", limits[1])
		return value, false
	}

	return value, true
}

func (v *Validator) checkFloatDomain(candidate string) (native, bool) {
	s := strings.TrimSpace(candidate)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// integer literals with a base prefix
		num, ok := util.ParseNumeric(s)
		if !ok || !num.IsInt {
			v.diag("value is not numeric", "type", v.typ, "value", candidate)
			return native{}, false
		}
		f, err = float64(num.Int), nil
		if num.IsUint {
			f = float64(num.Uint)
		}
	}
	value := native{f: f}

	if v.typ == types.Float64 {
		if err != nil {
			v.diag("value outside datatype range", "type", v.typ, "value", candidate)
			return value, false
		}
		return value, true
	}

	if f < -math.MaxFloat32 {
		v.diag("value is less than datatype min", "type", v.typ, "value", candidate, "min", -math.MaxFloat32)
		return value, false
	}
	if f > math.MaxFloat32 {
		v.diag("value is greater than datatype max", "type", v.typ, "value", candidate, "max", math.MaxFloat32)
		return value, false
	}

	return value, true
}

func evaluate[T cmp.Ordered](value T, op types.Operator, ops []T) bool {
	switch op {
	case types.LT:
		return value < ops[0]
	case types.LE:
		return value <= ops[0]
	case types.GT:
		return value > ops[0]
	case types.GE:
		return value >= ops[0]
	case types.GTLT:
		return ops[0] < value && value < ops[1]
	case types.GELT:
		return ops[0] <= value && value < ops[1]
	case types.GELE:
		return ops[0] <= value && value <= ops[1]
	case types.GTLE:
		return ops[0] < value && value <= ops[1]
	case types.IN:
		for _, o := range ops {
			if o == value {
				return true
			}
		}
		return false
	}

	return true
}

func formatOperand[T Operand](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
