package ezopt

import (
	"log/slog"

	"github.com/napalu/ezopt/i18n"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/validation"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// Unbound marks a group which has no validator
const Unbound = -1

// Unbounded is the expected argument count of a group accepting any number of delimited values
const Unbounded = -1

// gutter is the number of spaces separating the flags column from the help column
const gutter = 3

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureGroupFunc is used when defining an OptionGroup with NewGroup or Parser.AddGroup
type ConfigureGroupFunc func(group *OptionGroup, err *error)

// OptionGroup is the declared shape of one logical option, identified by one or
// more flag aliases, together with the occurrences captured while parsing.
type OptionGroup struct {
	flags      []string
	defaults   string
	required   bool
	expectArgs int
	delim      rune
	help       string
	validator  *validation.Validator

	isSet      bool
	args       [][]string
	parseIndex []int
}

// Parser is the registry of option groups and the state of the last parse.
// A Parser is not safe for concurrent use.
type Parser struct {
	// alias -> index into groups
	aliases *orderedmap.OrderedMap
	groups  []*OptionGroup
	// group index -> validator id, Unbound when the group has none
	bindings   *orderedmap.OrderedMap
	validators []*validation.Validator

	firstArgs   []string
	lastArgs    []string
	unknownArgs []string
	// indexes into firstArgs of program name tokens
	programArgs []int
	errors      []error
	// groups declared through WithGroup, registered once every option ran
	pending [][]ConfigureGroupFunc

	overview    string
	syntax      string
	example     string
	footer      string
	doubleSpace bool
	strict      bool
	comment     rune
	envPrefix   string

	logger   *slog.Logger
	i18n     *i18n.Bundle
	lang     language.Tag
	terminal util.TerminalSizer
	renderer Renderer
}
