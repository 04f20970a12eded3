package completion

import (
	"fmt"

	"github.com/napalu/goarg/errs"
)

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the Generator for shell: bash, zsh, fish or powershell
func GetGenerator(shell string) (Generator, error) {
	switch shell {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	case "powershell":
		return &PowerShellGenerator{}, nil
	}

	return nil, fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedShell, shell)
}

// Generate renders the completion script of programName for shell
func Generate(shell, programName string, data Data) (string, error) {
	g, err := GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(programName, data), nil
}
