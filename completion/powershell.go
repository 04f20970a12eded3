package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    if (-not $wordToComplete.StartsWith('-')) {
        return
    }

    @(`, programName)

	for _, f := range data.Flags {
		desc := escapePowerShell(f.Description)
		if desc == "" {
			desc = f.Long
		}
		fmt.Fprintf(&script, `
        [System.Management.Automation.CompletionResult]::new('--%[1]s', '%[1]s', 'ParameterName', '%[2]s')`,
			f.Long, desc)
		if f.Short != 0 {
			fmt.Fprintf(&script, `
        [System.Management.Automation.CompletionResult]::new('-%[1]c', '%[1]c', 'ParameterName', '%[2]s')`,
				f.Short, desc)
		}
	}

	script.WriteString(`
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}
