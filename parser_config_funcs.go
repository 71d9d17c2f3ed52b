package ezopt

import (
	"log/slog"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/i18n"
	"github.com/napalu/ezopt/internal/util"
	"golang.org/x/text/language"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
// Groups given with WithGroup are registered in order after all other options
// have been applied, so WithLogger or WithStrictAliases may appear anywhere.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithOverview("demo - shows how options are parsed"),
//		WithSyntax("demo [OPTIONS] FILE..."),
//		WithGroup(
//			WithFlags("-h", "--help"),
//			WithHelp("Display usage instructions.")),
//		WithGroup(
//			WithFlags("-d", "--dimension"),
//			WithExpectArgs(3),
//			WithDelimiter(','),
//			WithDefault("640,480,1"),
//			WithHelp("Width, height and depth.")))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	pending := parser.pending
	parser.pending = nil
	for _, group := range pending {
		if err = parser.AddGroup(group...); err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithGroup declares a group which NewParserWith adds with AddGroup
func WithGroup(configs ...ConfigureGroupFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.pending = append(parser.pending, configs)
	}
}

// WithOverview sets the text rendered at the top of the usage document
func WithOverview(overview string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.overview = overview
	}
}

// WithSyntax sets the text following the USAGE heading
func WithSyntax(syntax string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.syntax = syntax
	}
}

// WithExample sets the body of the EXAMPLES section. The section is omitted when empty.
func WithExample(example string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.example = example
	}
}

func WithFooter(footer string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.footer = footer
	}
}

// WithDoubleSpace controls the blank line rendered after every usage entry (on by default)
func WithDoubleSpace(doubleSpace bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.doubleSpace = doubleSpace
	}
}

// WithLogger sets the logger receiving parser and validator diagnostics
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithStrictAliases makes registering an alias which is already in use an error
// instead of moving the alias to the new group.
func WithStrictAliases(strict bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.strict = strict
	}
}

// WithLanguage selects the language of usage headings and errors. The
// language must be available in the parser's bundle.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetLanguage(lang)
	}
}

// WithBundle replaces the message bundle used for headings and errors
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if bundle == nil {
			*err = errs.ErrConfiguringParser
			return
		}
		parser.i18n = bundle
	}
}

// WithEnvPrefix sets the prefix of the variable names ImportEnv looks up
func WithEnvPrefix(prefix string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.envPrefix = prefix
	}
}

// WithCommentChar sets the line comment marker used by ImportFile and ExportFile
func WithCommentChar(comment rune) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.comment = comment
	}
}

// WithTerminal replaces the terminal queried for the usage width
func WithTerminal(terminal util.TerminalSizer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.terminal = terminal
	}
}
