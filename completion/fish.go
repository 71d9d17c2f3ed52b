package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		switch {
		case strings.HasPrefix(flag, "--"):
			cmd = fmt.Sprintf("%s -l %s", cmd, strings.TrimPrefix(flag, "--"))
		case strings.HasPrefix(flag, "-") && len([]rune(flag)) == 2:
			cmd = fmt.Sprintf("%s -s %s", cmd, strings.TrimPrefix(flag, "-"))
		case strings.HasPrefix(flag, "-"):
			cmd = fmt.Sprintf("%s -o %s", cmd, strings.TrimPrefix(flag, "-"))
		default:
			// aliases without a dash are offered as plain words
			cmd = fmt.Sprintf("%s -f -a '%s'", cmd, escapeFish(flag))
		}

		if data.TakesValue[flag] {
			cmd += " -r"
			if vals := values(data, flag); len(vals) > 0 {
				cmd = fmt.Sprintf("%s -f -a '%s'", cmd, escapeFish(strings.Join(vals, " ")))
			}
		}

		if desc := data.Descriptions[flag]; desc != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(desc))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
