package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, "`", "\\`")
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}

// values returns the accepted values of flag
func values(data CompletionData, flag string) []string {
	out := make([]string, 0, len(data.FlagValues[flag]))
	for _, v := range data.FlagValues[flag] {
		out = append(out, v.Value)
	}
	return out
}

// functionName turns programName into a shell function name
func functionName(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, programName)
}
