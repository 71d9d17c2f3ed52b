package ezopt

import (
	"github.com/napalu/ezopt/completion"
	"github.com/napalu/ezopt/errs"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/types"
)

// GetCompletionData collects every alias in usage order with the first line
// of its help text. Aliases of groups bound to a text set validator get the
// set's values.
func (p *Parser) GetCompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Descriptions: map[string]string{},
		TakesValue:   map[string]bool{},
		FlagValues:   map[string][]completion.CompletionValue{},
	}

	for _, group := range p.sortedGroups() {
		var accepted []completion.CompletionValue
		if v := p.boundValidator(p.indexOf(group)); v != nil && v.Type() == types.Text {
			for _, value := range v.Values() {
				accepted = append(accepted, completion.CompletionValue{Value: value})
			}
		}

		description := ""
		if lines := util.SplitDelim(group.help, '\n'); len(lines) > 0 {
			description = lines[0]
		}

		for _, flag := range SortFlags(group.flags) {
			// a reassigned alias belongs to a later group
			if owner, _ := p.lookup(flag); owner != group {
				continue
			}
			data.Flags = append(data.Flags, flag)
			data.Descriptions[flag] = description
			if group.expectArgs != 0 {
				data.TakesValue[flag] = true
				if len(accepted) > 0 {
					data.FlagValues[flag] = accepted
				}
			}
		}
	}

	return data
}

// GenerateCompletion returns a completion script of shell for programName.
// Supported shells are bash, zsh, fish and powershell.
func (p *Parser) GenerateCompletion(shell, programName string) (string, error) {
	generator, ok := completion.GetGenerator(shell)
	if !ok {
		return "", errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return generator.Generate(programName, p.GetCompletionData()), nil
}
