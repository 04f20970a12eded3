package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `#compdef %[1]s

__%[1]s_completion() {
    _arguments -s \`, programName)

	for _, f := range data.Flags {
		desc := escapeZsh(f.Description)
		spec := "--" + f.Long
		if f.Short != 0 {
			spec = fmt.Sprintf("{-%c,--%s}", f.Short, f.Long)
		}
		if f.TakesValue {
			// values are attached to the long name, so no separate argument is declared
			fmt.Fprintf(&script, `
        '(--%[1]s)'%[2]s'+[%[3]s]:%[4]s:' \`, f.Long, spec, desc, f.Type)
		} else {
			fmt.Fprintf(&script, `
        '(--%[1]s)'%[2]s'[%[3]s]' \`, f.Long, spec, desc)
		}
	}

	fmt.Fprintf(&script, `
        '*:argument:_files'
}

__%[1]s_completion "$@"
`, programName)

	return script.String()
}
