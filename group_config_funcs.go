package ezopt

import (
	"strings"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/validation"
)

// WithFlags appends aliases to the group. The first alias of the group is its
// primary alias, used in diagnostics and as the export key. Aliases are used
// verbatim: "-d", "--dimension" and "/d" are all valid aliases.
func WithFlags(flags ...string) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		for _, flag := range flags {
			if strings.TrimSpace(flag) == "" {
				*err = errs.ErrEmptyFlag
				return
			}
		}
		group.flags = append(group.flags, flags...)
	}
}

// WithDefault sets the text the getters resolve when the group was not seen
func WithDefault(defaults string) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		group.defaults = defaults
	}
}

// WithRequired marks the group as mandatory; see Parser.GotRequired
func WithRequired(required bool) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		group.required = required
	}
}

// WithExpectArgs sets how many delimited values every occurrence carries:
// 0 for a flag-only group, N for exactly N values or Unbounded for any number.
func WithExpectArgs(n int) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		if n < Unbounded {
			*err = errs.ErrInvalidExpectArgs.WithArgs(n, group.Name())
			return
		}
		group.expectArgs = n
	}
}

// WithDelimiter sets the rune splitting an occurrence's value. 0 disables splitting.
func WithDelimiter(delim rune) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		group.delim = delim
	}
}

// WithHelp sets the help text rendered by GetUsage. Embedded newlines start new help lines.
func WithHelp(help string) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		group.help = help
	}
}

// WithValidator binds a validator to the group. The same validator may be bound to several groups.
func WithValidator(validator *validation.Validator) ConfigureGroupFunc {
	return func(group *OptionGroup, err *error) {
		group.validator = validator
	}
}
