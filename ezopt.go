// Package ezopt parses command lines and configuration text into option
// groups: sets of flag aliases sharing one declared shape (value count,
// delimiter, default, help text and an optional validator).
//
// A typical program registers its groups, parses os.Args and then checks the
// result before reading values:
//
//	parser := ezopt.NewParser()
//	_ = parser.Add("", false, 0, 0, "Display usage instructions.", []string{"-h", "--help"}, nil)
//	_ = parser.Add("640,480", false, 2, ',', "Width and height.", []string{"-s", "--size"},
//		validation.New[uint16](types.GT, 0))
//	parser.Parse(os.Args)
//
//	var bad []string
//	if !parser.GotRequired(&bad) || !parser.GotExpected(&bad) {
//		fmt.Print(parser.GetUsage(0, types.Align))
//	}
//	size := parser.Get("--size").GetInt64s()
package ezopt

import (
	"log/slog"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/i18n"
	"github.com/napalu/ezopt/internal/parse"
	"github.com/napalu/ezopt/validation"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// NewParser returns an empty Parser
func NewParser() *Parser {
	bundle := i18n.Default()

	return &Parser{
		aliases:     orderedmap.New(),
		bindings:    orderedmap.New(),
		doubleSpace: true,
		comment:     parse.DefaultComment,
		i18n:        bundle,
		lang:        bundle.DefaultLanguage(),
	}
}

// SetLogger sets the logger receiving diagnostics. Validators registered
// afterwards without a logger of their own inherit it.
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// SetLanguage selects the language of usage headings and of the errors
// reported by GetErrors and by the import methods. The closest
// available variant is used; ErrLanguageUnavailable is returned when the
// bundle has no translation for the base language.
func (p *Parser) SetLanguage(lang language.Tag) error {
	matched := p.i18n.Match(lang)
	want, _ := lang.Base()
	got, _ := matched.Base()
	if want != got {
		return errs.ErrLanguageUnavailable.WithArgs(lang)
	}
	p.lang = matched

	return nil
}

// Language returns the language used for usage headings and errors
func (p *Parser) Language() language.Tag {
	return p.lang
}

// Add registers one option group. It is the positional form of AddGroup:
//
//	// -d, --dimension: exactly 3 comma separated values, 640,480,1 when absent
//	err := parser.Add("640,480,1", false, 3, ',', "Dimensions.", []string{"-d", "--dimension"}, nil)
func (p *Parser) Add(defaults string, required bool, expectArgs int, delim rune, help string,
	flags []string, validator *validation.Validator) error {
	return p.AddGroup(
		WithFlags(flags...),
		WithDefault(defaults),
		WithRequired(required),
		WithExpectArgs(expectArgs),
		WithDelimiter(delim),
		WithHelp(help),
		WithValidator(validator))
}

// AddGroup creates an option group from configs and registers each of its
// aliases. A group with a validator binds it; a validator is registered once
// however many groups share it.
//
// An alias already in use moves to the new group and a warning is logged;
// with WithStrictAliases the registration fails with ErrFlagAlreadyExists.
func (p *Parser) AddGroup(configs ...ConfigureGroupFunc) error {
	group, err := NewGroup(configs...)
	if err != nil {
		return err
	}

	if p.strict {
		for _, flag := range group.flags {
			if _, found := p.aliases.Get(flag); found {
				return errs.ErrFlagAlreadyExists.WithArgs(flag)
			}
		}
	}

	id := len(p.groups)
	p.groups = append(p.groups, group)
	for _, flag := range group.flags {
		if prev, found := p.aliases.Get(flag); found && prev.(int) != id {
			p.log().Warn("flag alias reassigned", "flag", flag, "previous", p.groups[prev.(int)].Name())
		}
		p.aliases.Set(flag, id)
	}

	binding := Unbound
	if group.validator != nil {
		binding = p.registerValidator(group.validator)
	}
	p.bindings.Set(id, binding)

	return nil
}

func (p *Parser) registerValidator(v *validation.Validator) int {
	for i, known := range p.validators {
		if known == v {
			return i
		}
	}

	id := len(p.validators)
	v.SetID(id)
	if v.Logger() == nil && p.logger != nil {
		v.SetLogger(p.logger)
	}
	p.validators = append(p.validators, v)

	return id
}

// Get returns the group owning flag, or nil when flag is not a registered alias
func (p *Parser) Get(flag string) *OptionGroup {
	group, _ := p.lookup(flag)
	return group
}

// HasFlag reports whether flag is a registered alias
func (p *Parser) HasFlag(flag string) bool {
	_, found := p.aliases.Get(flag)
	return found
}

// IsSet reports whether the group owning flag was seen by a parse or import
func (p *Parser) IsSet(flag string) bool {
	if group, ok := p.lookup(flag); ok {
		return group.isSet
	}

	return false
}

// Groups returns the registered groups in registration order
func (p *Parser) Groups() []*OptionGroup {
	return append([]*OptionGroup{}, p.groups...)
}

// Validators returns the validator registry; a validator's ID is its index
func (p *Parser) Validators() []*validation.Validator {
	return append([]*validation.Validator{}, p.validators...)
}

// ValidatorFor returns the validator bound to the group owning flag, or nil
func (p *Parser) ValidatorFor(flag string) *validation.Validator {
	id, found := p.aliases.Get(flag)
	if !found {
		return nil
	}

	return p.boundValidator(id.(int))
}

// Parse dispatches args, whose first element is the program name. The program
// name is kept with the leading free arguments. Parse returns false when a
// flag expecting a value is the last token; the error is available in
// GetErrors and the remaining state is left as it was when the flag was found.
//
// Parsing is additive: values recorded by an earlier Parse or ImportFile are
// kept. Call ResetArgs before parsing a new command line against the same schema.
func (p *Parser) Parse(args []string) bool {
	if len(args) == 0 {
		return true
	}

	return p.dispatch(args, true)
}

// ParseString splits argString like a POSIX shell and parses the result with Parse
func (p *Parser) ParseString(argString string) bool {
	args, err := parse.Split(argString)
	if err != nil {
		p.addError(errs.ErrSplitCommandLine.WithArgs(argString).Wrap(err))
		return false
	}

	return p.Parse(args)
}

// FirstArgs returns the tokens found before the first flag, program name included
func (p *Parser) FirstArgs() []string {
	return append([]string{}, p.firstArgs...)
}

// LastArgs returns the tokens found after the last flag and its value
func (p *Parser) LastArgs() []string {
	return append([]string{}, p.lastArgs...)
}

// UnknownArgs returns the tokens between the first and the last flag which are
// neither an alias nor a flag value
func (p *Parser) UnknownArgs() []string {
	return append([]string{}, p.unknownArgs...)
}

// GetErrors returns the errors recorded since the last Reset or ResetArgs,
// rendered in the parser language. They still match their sentinels under
// errors.Is.
func (p *Parser) GetErrors() []error {
	out := make([]error, len(p.errors))
	for i, err := range p.errors {
		out[i] = p.localize(err)
	}

	return out
}

func (p *Parser) GetErrorCount() int {
	return len(p.errors)
}

// Reset removes every group, validator and binding and clears the parse state.
// Rendering texts and parser settings are kept.
func (p *Parser) Reset() {
	p.ResetArgs()
	p.doubleSpace = true
	p.groups = nil
	p.validators = nil
	p.aliases = orderedmap.New()
	p.bindings = orderedmap.New()
}

// ResetArgs clears recorded occurrences and the free and unknown argument
// lists, keeping group declarations and validator bindings.
func (p *Parser) ResetArgs() {
	for _, group := range p.groups {
		group.clearArgs()
	}
	p.firstArgs = nil
	p.lastArgs = nil
	p.unknownArgs = nil
	p.programArgs = nil
	p.errors = nil
}

// GotRequired appends the primary alias of every required group which was not
// seen to bad and reports whether none was missing.
func (p *Parser) GotRequired(bad *[]string) bool {
	ok := true
	for _, group := range p.groups {
		if group.required && !group.isSet {
			*bad = append(*bad, group.Name())
			ok = false
		}
	}

	return ok
}

// GotExpected appends the primary alias of every seen group whose occurrences
// do not carry the expected number of values to bad, once per offending
// occurrence, and reports whether all groups were satisfied.
func (p *Parser) GotExpected(bad *[]string) bool {
	ok := true
	for _, group := range p.groups {
		if !group.isSet || group.expectArgs == 0 {
			continue
		}

		if len(group.args) == 0 {
			*bad = append(*bad, group.Name())
			ok = false
			continue
		}

		if group.expectArgs == Unbounded {
			continue
		}
		for _, values := range group.args {
			if len(values) != group.expectArgs {
				*bad = append(*bad, group.Name())
				ok = false
			}
		}
	}

	return ok
}

// GotValid checks every value of every occurrence against the validator bound
// to its group. For each group the first rejected value is appended to
// badArgs and the group's primary alias to badOptions; later values of that
// group are not checked.
func (p *Parser) GotValid(badOptions, badArgs *[]string) bool {
	ok := true
	for id, group := range p.groups {
		validator := p.boundValidator(id)
		if validator == nil {
			continue
		}

	occurrences:
		for _, values := range group.args {
			for _, value := range values {
				if !validator.IsValid(value) {
					*badOptions = append(*badOptions, group.Name())
					*badArgs = append(*badArgs, value)
					ok = false
					break occurrences
				}
			}
		}
	}

	return ok
}
