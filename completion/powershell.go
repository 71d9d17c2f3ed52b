package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }
    $prev = if ($elements.Count -gt 1) { $elements[-1] } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -gt 1) { $prev = $elements[-2] }

    switch ($prev) {`, escapePowerShell(programName)))

	for _, flag := range data.Flags {
		vals := values(data, flag)
		if !data.TakesValue[flag] || len(vals) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        '%s' {
            @(`, escapePowerShell(flag)))
		for _, v := range vals {
			script.WriteString(fmt.Sprintf(`
                [System.Management.Automation.CompletionResult]::new('%[1]s', '%[1]s', 'ParameterValue', '%[1]s')`,
				escapePowerShell(v)))
		}
		script.WriteString(`
            ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
            return
        }`)
	}

	script.WriteString(`
    }

    @(`)
	for _, flag := range data.Flags {
		desc := data.Descriptions[flag]
		if desc == "" {
			desc = flag
		}
		script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')`,
			escapePowerShell(flag), escapePowerShell(flag), escapePowerShell(desc)))
	}
	script.WriteString(`
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}
