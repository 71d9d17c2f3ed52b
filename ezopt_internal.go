package ezopt

import (
	"log/slog"
	"sort"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/i18n"
	"github.com/napalu/ezopt/internal/parse"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/validation"
)

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}

	return slog.Default()
}

func (p *Parser) addError(err error) {
	p.errors = append(p.errors, err)
}

// localize renders translatable errors in the parser language
func (p *Parser) localize(err error) error {
	if te, ok := err.(i18n.TranslatableError); ok {
		return errs.WithProvider(te, i18n.NewMessageProvider(p.i18n, p.lang))
	}

	return err
}

func (p *Parser) lastError() error {
	return p.localize(p.errors[len(p.errors)-1])
}

func (p *Parser) lookup(flag string) (*OptionGroup, bool) {
	id, found := p.aliases.Get(flag)
	if !found {
		return nil, false
	}

	return p.groups[id.(int)], true
}

func (p *Parser) boundValidator(group int) *validation.Validator {
	id, found := p.bindings.Get(group)
	if !found || id.(int) == Unbound {
		return nil
	}

	return p.validators[id.(int)]
}

func (p *Parser) indexOf(group *OptionGroup) int {
	for i, g := range p.groups {
		if g == group {
			return i
		}
	}

	return -1
}

func (p *Parser) isProgramArg(index int) bool {
	for _, i := range p.programArgs {
		if i == index {
			return true
		}
	}

	return false
}

func (p *Parser) addFirstArg(arg string, program bool) {
	if program {
		p.programArgs = append(p.programArgs, len(p.firstArgs))
	}
	p.firstArgs = append(p.firstArgs, arg)
}

// dispatch runs the tokenizer over tokens. When withProgram is set the first
// token is the program name, which always lands in the leading free
// arguments. It returns false when a flag expecting a value is the last token.
func (p *Parser) dispatch(tokens []string, withProgram bool) bool {
	state := parse.NewState(tokens)

	first := -1
	for state.Advance() {
		if p.HasFlag(state.CurrentArg()) {
			first = state.Pos()
			break
		}
	}

	if first < 0 {
		rest := tokens
		if withProgram && len(tokens) > 0 {
			p.addFirstArg(tokens[0], true)
			rest = tokens[1:]
		}
		p.lastArgs = append(p.lastArgs, rest...)
		return true
	}

	for i := 0; i < first; i++ {
		p.addFirstArg(tokens[i], withProgram && i == 0)
	}

	last := first
	state.SetPos(first - 1)
	for state.Advance() {
		flag := state.CurrentArg()
		group, ok := p.lookup(flag)
		if !ok {
			continue
		}

		group.isSet = true
		group.parseIndex = append(group.parseIndex, state.Pos())
		if group.expectArgs != 0 {
			value, ok := state.Peek()
			if !ok {
				p.addError(errs.ErrFlagExpectsValue.WithArgs(flag))
				p.log().Warn("flag expects a value, parsing stopped", "flag", flag, "position", state.Pos())
				return false
			}
			state.Advance()
			group.args = append(group.args, util.SplitDelim(value, group.delim))
		}
		last = state.Pos()
	}

	// tokens in the flag region which are neither alias nor value
	state.SetPos(first - 1)
	for state.Advance() && state.Pos() <= last {
		group, ok := p.lookup(state.CurrentArg())
		if !ok {
			p.unknownArgs = append(p.unknownArgs, state.CurrentArg())
			continue
		}
		if group.expectArgs != 0 {
			state.Advance()
		}
	}

	p.lastArgs = append(p.lastArgs, tokens[last+1:]...)

	return true
}

// sortedGroups returns the groups ordered by their first alias under CompareFlags
func (p *Parser) sortedGroups() []*OptionGroup {
	groups := make([]*OptionGroup, len(p.groups))
	copy(groups, p.groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return CompareFlags(sortedFirst(groups[i]), sortedFirst(groups[j])) < 0
	})

	return groups
}

func sortedFirst(group *OptionGroup) string {
	flags := SortFlags(group.flags)
	if len(flags) == 0 {
		return ""
	}

	return flags[0]
}
