package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[2]s_completion() {
    _arguments -s \`, programName, fn))

	for _, flag := range data.Flags {
		spec := fmt.Sprintf("*%s[%s]", flag, escapeZsh(data.Descriptions[flag]))
		if data.TakesValue[flag] {
			if vals := values(data, flag); len(vals) > 0 {
				spec += fmt.Sprintf(":value:(%s)", escapeZsh(strings.Join(vals, " ")))
			} else {
				spec += ":value:_files"
			}
		}
		script.WriteString(fmt.Sprintf(`
        '%s' \`, spec))
	}

	script.WriteString(fmt.Sprintf(`
        '*:file:_files'
}

__%[1]s_completion "$@"
`, fn))

	return script.String()
}
