package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, f := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		if f.TakesValue {
			cmd += " -r"
		} else {
			cmd += " -f"
		}

		if f.Short != 0 {
			cmd = fmt.Sprintf("%s -l %s -s %c", cmd, f.Long, f.Short)
		} else {
			cmd = fmt.Sprintf("%s -l %s", cmd, f.Long)
		}

		desc := f.Description
		if f.TakesValue && f.Type != "" {
			desc = strings.TrimSpace(desc + " (" + f.Type + ")")
		}
		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(desc))
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
