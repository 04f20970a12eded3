package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `#!/bin/bash

function __%[1]s_completion() {
    local cur
    cur="${COMP_WORDS[COMP_CWORD]}"

    # Options are only recognised before the first argument or "--"
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" == "--" || "${COMP_WORDS[i]}" != -* ]]; then
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
        fi
    done

    if [[ "$cur" == -* ]]; then
        local flags=()`, programName)

	for _, f := range data.Flags {
		fmt.Fprintf(&script, `
        flags+=("--%s[%s]")`, f.Long, escapeBash(f.Description))
		if f.Short != 0 {
			fmt.Fprintf(&script, `
        flags+=("-%c[%s]")`, f.Short, escapeBash(f.Description))
		}
	}

	fmt.Fprintf(&script, `

        COMPREPLY=( $(compgen -W "${flags[*]%%%%[*}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%[1]s_completion %[1]s
`, programName)

	return script.String()
}
