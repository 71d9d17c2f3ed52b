package ezopt

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/internal/parse"
	"github.com/napalu/ezopt/internal/util"
)

// CommentChar returns the line comment marker of configuration text
func (p *Parser) CommentChar() rune {
	return p.comment
}

// ExportFile writes the parse state as configuration text which ImportFile
// reads back to the same option values. Leading free arguments other than the
// program name come first, then one line per occurrence of every seen group in
// usage order and finally the trailing free arguments. With all set, groups
// which were not seen are written with their default text when they have one.
//
// Values which are empty or contain whitespace, a quote character or the
// comment character are quoted; see util.Quote.
func (p *Parser) ExportFile(w io.Writer, all bool) error {
	var sb strings.Builder

	wrote := false
	for i, arg := range p.firstArgs {
		if p.isProgramArg(i) {
			continue
		}
		sb.WriteString(p.quote(arg))
		sb.WriteString(" ")
		wrote = true
	}
	if wrote {
		sb.WriteString("\n")
	}

	for _, group := range p.sortedGroups() {
		if !group.isSet && !all {
			continue
		}

		flag := sortedFirst(group)
		if group.expectArgs == 0 {
			if group.isSet {
				sb.WriteString(flag)
				sb.WriteString("\n")
			}
			continue
		}

		if !group.isSet || len(group.args) == 0 {
			if group.defaults != "" {
				sb.WriteString(flag)
				sb.WriteString(" ")
				sb.WriteString(p.quote(group.defaults))
				sb.WriteString("\n")
			}
			continue
		}

		for _, values := range group.args {
			if len(values) == 0 {
				// an empty value splits into no parts; keep it as ""
				values = []string{""}
			}
			sb.WriteString(flag)
			sb.WriteString(" ")
			sb.WriteString(strings.Join(util.ConvertAll(values, p.quote), delimString(group.delim)))
			sb.WriteString("\n")
		}
	}

	for _, arg := range p.lastArgs {
		sb.WriteString(p.quote(arg))
		sb.WriteString(" ")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errs.ErrFileOperation.WithArgs("export").Wrap(err)
	}

	return nil
}

// ExportPath writes ExportFile output to the file at path, replacing its content
func (p *Parser) ExportPath(path string, all bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errs.ErrFileOperation.WithArgs(path).Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.ErrFileOperation.WithArgs(path).Wrap(cerr)
		}
	}()

	return p.ExportFile(f, all)
}

// ImportFile reads configuration text and dispatches it like a command line
// without a program name. Lines starting with the comment character are
// ignored and a comment character outside quotes ends a line unless it is
// escaped with a backslash. Tokens are separated by whitespace; single or
// double quotes group text containing whitespace and a quoted span only ends
// at the kind of quote which opened it. Text ending inside a quoted span is
// rejected with ErrUnterminatedQuote before any token is dispatched.
//
// Importing is additive: values already recorded are kept.
func (p *Parser) ImportFile(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errs.ErrFileOperation.WithArgs("import").Wrap(err)
	}

	lines := parse.StripComments(string(data), p.comment)
	tokens, complete := parse.Tokenize(parse.JoinLines(lines))
	if !complete {
		p.addError(errs.ErrUnterminatedQuote)
		p.log().Warn("unterminated quote in configuration text")
		return p.lastError()
	}
	if !p.dispatch(tokens, false) {
		return p.lastError()
	}

	return nil
}

// ImportPath reads configuration text from the file at path; see ImportFile
func (p *Parser) ImportPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.ErrFileOperation.WithArgs(path).Wrap(err)
	}
	defer f.Close()

	if err = p.ImportFile(f); err != nil &&
		!errors.Is(err, errs.ErrFlagExpectsValue) && !errors.Is(err, errs.ErrUnterminatedQuote) {
		return errs.ErrFileOperation.WithArgs(path).Wrap(err)
	}

	return err
}

func (p *Parser) quote(s string) string {
	return util.Quote(s, p.comment)
}

func delimString(delim rune) string {
	if delim == 0 {
		return ""
	}

	return string(delim)
}
