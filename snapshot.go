package ezopt

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/types"
	"gopkg.in/yaml.v3"
)

// Snapshot is the parse state in a form suited to structured formats
type Snapshot struct {
	FirstArgs   []string         `json:"firstArgs,omitempty" yaml:"firstArgs,omitempty" toml:"firstArgs,omitempty"`
	Options     []OptionSnapshot `json:"options" yaml:"options" toml:"options"`
	LastArgs    []string         `json:"lastArgs,omitempty" yaml:"lastArgs,omitempty" toml:"lastArgs,omitempty"`
	UnknownArgs []string         `json:"unknownArgs,omitempty" yaml:"unknownArgs,omitempty" toml:"unknownArgs,omitempty"`
}

// OptionSnapshot holds the occurrences of one seen group, keyed by its primary alias
type OptionSnapshot struct {
	Flag   string     `json:"flag" yaml:"flag" toml:"flag"`
	Values [][]string `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

// Snapshot returns the seen groups in registration order with the free and
// unknown arguments. The program name is not part of the snapshot.
func (p *Parser) Snapshot() Snapshot {
	s := Snapshot{Options: []OptionSnapshot{}}
	for i, arg := range p.firstArgs {
		if !p.isProgramArg(i) {
			s.FirstArgs = append(s.FirstArgs, arg)
		}
	}

	for _, group := range p.groups {
		if !group.isSet {
			continue
		}
		s.Options = append(s.Options, OptionSnapshot{
			Flag:   group.Name(),
			Values: group.Args(),
		})
	}

	s.LastArgs = append(s.LastArgs, p.lastArgs...)
	s.UnknownArgs = append(s.UnknownArgs, p.unknownArgs...)

	return s
}

// ExportSnapshot encodes Snapshot to w in format
func (p *Parser) ExportSnapshot(w io.Writer, format types.Format) error {
	snapshot := p.Snapshot()

	var err error
	switch format {
	case types.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(snapshot)
	case types.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(snapshot); err == nil {
			err = enc.Close()
		}
	case types.TOML:
		err = toml.NewEncoder(w).Encode(snapshot)
	default:
		return errs.ErrUnsupportedFormat.WithArgs(format)
	}

	if err != nil {
		return errs.ErrEncodeSnapshot.WithArgs(format).Wrap(err)
	}

	return nil
}

// ImportSnapshot decodes a snapshot from r and dispatches it like ImportFile.
// Options naming an unknown flag are skipped and recorded in GetErrors.
func (p *Parser) ImportSnapshot(r io.Reader, format types.Format) error {
	var snapshot Snapshot

	var err error
	switch format {
	case types.JSON:
		err = json.NewDecoder(r).Decode(&snapshot)
	case types.YAML:
		err = yaml.NewDecoder(r).Decode(&snapshot)
	case types.TOML:
		_, err = toml.NewDecoder(r).Decode(&snapshot)
	default:
		return errs.ErrUnsupportedFormat.WithArgs(format)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return errs.ErrDecodeSnapshot.WithArgs(format).Wrap(err)
	}

	return p.applySnapshot(snapshot)
}

func (p *Parser) applySnapshot(snapshot Snapshot) error {
	tokens := append([]string{}, snapshot.FirstArgs...)
	for _, option := range snapshot.Options {
		group, ok := p.lookup(option.Flag)
		if !ok {
			p.addError(errs.ErrFlagNotFound.WithArgs(option.Flag))
			p.log().Warn("snapshot option skipped", "flag", option.Flag)
			continue
		}

		if group.expectArgs == 0 {
			tokens = append(tokens, option.Flag)
			continue
		}
		for _, values := range option.Values {
			tokens = append(tokens, option.Flag, strings.Join(values, delimString(group.delim)))
		}
	}
	tokens = append(tokens, snapshot.LastArgs...)

	if !p.dispatch(tokens, false) {
		return p.lastError()
	}
	p.unknownArgs = append(p.unknownArgs, snapshot.UnknownArgs...)

	return nil
}
