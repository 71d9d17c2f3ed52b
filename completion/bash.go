package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

__%[1]s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in`, fn))

	// flags with accepted values, then flags expecting free text
	for _, flag := range data.Flags {
		if !data.TakesValue[flag] {
			continue
		}
		if vals := values(data, flag); len(vals) > 0 {
			script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return
            ;;`, flag, escapeBash(strings.Join(vals, " "))))
		} else {
			script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return
            ;;`, flag))
		}
	}

	script.WriteString(`
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "`)
	script.WriteString(escapeBash(strings.Join(data.Flags, " ")))
	script.WriteString(fmt.Sprintf(`" -- "${cur}") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "${cur}") )
}

complete -F __%[1]s_completion %[2]s
`, fn, programName))

	return script.String()
}
