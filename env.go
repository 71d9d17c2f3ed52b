package ezopt

import (
	"os"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/types"
)

// EnvFunc looks up an environment variable, like os.LookupEnv
type EnvFunc func(name string) (string, bool)

// EnvName returns the environment variable ImportEnv consults for the group
// owning flag: the longest alias of the group in screaming snake case, prefixed
// with the parser's env prefix and an underscore. "--output-dir" becomes
// OUTPUT_DIR, or APP_OUTPUT_DIR with the prefix "APP".
func (p *Parser) EnvName(flag string) string {
	group, ok := p.lookup(flag)
	if !ok {
		return ""
	}

	return p.envName(group)
}

func (p *Parser) envName(group *OptionGroup) string {
	longest := ""
	for _, flag := range group.flags {
		name := strings.TrimLeftFunc(flag, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(name) > len(longest) {
			longest = name
		}
	}

	name := strcase.ToScreamingSnake(longest)
	if p.envPrefix != "" {
		name = strcase.ToScreamingSnake(p.envPrefix) + "_" + name
	}

	return name
}

// EnvNames returns the environment variable of every group keyed by its primary alias
func (p *Parser) EnvNames() []types.KeyValue[string, string] {
	names := make([]types.KeyValue[string, string], 0, len(p.groups))
	for _, group := range p.groups {
		names = append(names, types.KeyValue[string, string]{Key: group.Name(), Value: p.envName(group)})
	}

	return names
}

// ImportEnv sets groups which have not been seen from their environment
// variable (see EnvName), so values from the command line or an earlier import
// take precedence. A flag-only group is set when its variable parses as true.
// A nil lookup uses os.LookupEnv.
func (p *Parser) ImportEnv(lookup EnvFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var tokens []string
	for _, group := range p.groups {
		if group.isSet {
			continue
		}

		value, found := lookup(p.envName(group))
		if !found {
			continue
		}

		flag := group.Name()
		if group.expectArgs == 0 {
			if util.ToBool(value) {
				tokens = append(tokens, flag)
			}
			continue
		}
		tokens = append(tokens, flag, value)
	}

	if len(tokens) == 0 {
		return nil
	}
	if !p.dispatch(tokens, false) {
		return p.lastError()
	}

	return nil
}
