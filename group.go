package ezopt

import (
	"time"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/validation"
)

// NewGroup creates an OptionGroup using functional configuration. Groups are
// normally created through Parser.AddGroup or Parser.Add.
//
//	group, err := NewGroup(
//		WithFlags("-d", "--dimension"),
//		WithExpectArgs(3),
//		WithDelimiter(','),
//		WithHelp("width, height and depth"))
func NewGroup(configs ...ConfigureGroupFunc) (*OptionGroup, error) {
	g := &OptionGroup{}

	var err error
	for _, config := range configs {
		config(g, &err)
		if err != nil {
			return nil, err
		}
	}

	if len(g.flags) == 0 {
		return nil, errs.ErrNoFlags
	}

	return g, nil
}

// Name returns the primary alias, which is the first alias in the group's alias list
func (g *OptionGroup) Name() string {
	if len(g.flags) == 0 {
		return ""
	}

	return g.flags[0]
}

// Flags returns a copy of the group's aliases in their current order
func (g *OptionGroup) Flags() []string {
	return append([]string{}, g.flags...)
}

func (g *OptionGroup) IsSet() bool {
	return g.isSet
}

// Args returns a copy of the recorded occurrences
func (g *OptionGroup) Args() [][]string {
	return util.CloneNested(g.args)
}

// ParseIndex returns the input positions at which the group's aliases were found
func (g *OptionGroup) ParseIndex() []int {
	return append([]int{}, g.parseIndex...)
}

func (g *OptionGroup) Default() string {
	return g.defaults
}

func (g *OptionGroup) Help() string {
	return g.help
}

func (g *OptionGroup) Required() bool {
	return g.required
}

// ExpectArgs returns 0 for a flag-only group, N for exactly N values per
// occurrence and Unbounded for any number of values.
func (g *OptionGroup) ExpectArgs() int {
	return g.expectArgs
}

func (g *OptionGroup) Delimiter() rune {
	return g.delim
}

// Validator returns the validator bound to the group, or nil
func (g *OptionGroup) Validator() *validation.Validator {
	return g.validator
}

func (g *OptionGroup) clearArgs() {
	g.isSet = false
	g.args = nil
	g.parseIndex = nil
}

func (g *OptionGroup) occurrence(n int) ([]string, bool) {
	if n >= len(g.args) || len(g.args[n]) == 0 {
		return nil, false
	}

	return g.args[n], true
}

// first returns the text a singular getter converts
func (g *OptionGroup) first() string {
	if !g.isSet {
		if items := util.SplitDelim(g.defaults, g.delim); len(items) > 0 {
			return items[0]
		}
		return ""
	}
	if values, ok := g.occurrence(0); ok {
		return values[0]
	}

	return ""
}

// values returns the texts a plural getter converts
func (g *OptionGroup) values() []string {
	if !g.isSet {
		return util.SplitDelim(g.defaults, g.delim)
	}
	if values, ok := g.occurrence(0); ok {
		return append([]string{}, values...)
	}

	return []string{}
}

// multi returns the texts a multi-occurrence getter converts
func (g *OptionGroup) multi() [][]string {
	if !g.isSet {
		if g.defaults == "" {
			return [][]string{}
		}
		return [][]string{util.SplitDelim(g.defaults, g.delim)}
	}

	return util.CloneNested(g.args)
}

func convertMulti[T any](in [][]string, convert func(string) T) [][]T {
	out := make([][]T, len(in))
	for i, values := range in {
		out[i] = util.ConvertAll(values, convert)
	}

	return out
}

// GetInt64 returns the first value of the first occurrence, or the default when the group was not seen
func (g *OptionGroup) GetInt64() int64 {
	return util.ToInt64(g.first())
}

// GetInt64s returns the values of the first occurrence, or the delimiter split default
func (g *OptionGroup) GetInt64s() []int64 {
	return util.ConvertAll(g.values(), util.ToInt64)
}

// GetMultiInt64s returns the values of every occurrence in encounter order
func (g *OptionGroup) GetMultiInt64s() [][]int64 {
	return convertMulti(g.multi(), util.ToInt64)
}

func (g *OptionGroup) GetFloat() float32 {
	return util.ToFloat32(g.first())
}

func (g *OptionGroup) GetFloats() []float32 {
	return util.ConvertAll(g.values(), util.ToFloat32)
}

func (g *OptionGroup) GetMultiFloats() [][]float32 {
	return convertMulti(g.multi(), util.ToFloat32)
}

func (g *OptionGroup) GetDouble() float64 {
	return util.ToFloat64(g.first())
}

func (g *OptionGroup) GetDoubles() []float64 {
	return util.ConvertAll(g.values(), util.ToFloat64)
}

func (g *OptionGroup) GetMultiDoubles() [][]float64 {
	return convertMulti(g.multi(), util.ToFloat64)
}

// GetString returns the first value of the first occurrence. When the group
// was not seen the whole default text is returned, delimiters included.
func (g *OptionGroup) GetString() string {
	if !g.isSet {
		return g.defaults
	}

	return g.first()
}

func (g *OptionGroup) GetStrings() []string {
	return g.values()
}

func (g *OptionGroup) GetMultiStrings() [][]string {
	return g.multi()
}

// GetBool reports true for a flag-only group which was seen. Otherwise the
// first value (or the default) is parsed with strconv.ParseBool.
func (g *OptionGroup) GetBool() bool {
	if g.isSet && g.expectArgs == 0 {
		return true
	}

	return util.ToBool(g.first())
}

// GetTime parses the first value (or the default) as a date. Text without a
// zone is read as UTC; malformed text yields the zero time.
func (g *OptionGroup) GetTime() time.Time {
	return util.ToTime(g.first())
}

func (g *OptionGroup) GetTimes() []time.Time {
	return util.ConvertAll(g.values(), util.ToTime)
}
