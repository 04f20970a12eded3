package completion

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/napalu/goarg/errs"
)

// Manager generates a completion script for one shell and saves it to the user's completion directory
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a Manager for shell. programName is reduced to its base name.
func NewManager(shell, programName string) (*Manager, error) {
	generator, err := GetGenerator(shell)
	if err != nil {
		return nil, err
	}

	paths, err := PathsFor(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Accept generates and stores the completion script from data
func (m *Manager) Accept(data Data) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the script produced by Accept
func (m *Manager) Script() string {
	return m.script
}

// Save writes the script produced by Accept and returns the file path written
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", errs.ErrNoCompletionScript
	}

	dir, err := m.ensureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.FileName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, ensurePermission(path, 0644)
}

// FileName returns the script file name following the shell's convention
func (m *Manager) FileName() string {
	info := fileInfo(m.Shell)
	return info.Prefix + m.ProgramName + info.Extension
}

func (m *Manager) ensureDir() (string, error) {
	perm := os.FileMode(0755)
	if err := os.MkdirAll(m.Paths.Primary, perm); err == nil {
		if err = ensurePermission(m.Paths.Primary, perm); err == nil {
			return m.Paths.Primary, nil
		}
	}

	if m.Paths.Fallback == "" {
		return "", fmt.Errorf("failed to create completion directory %s", m.Paths.Primary)
	}
	if err := os.MkdirAll(m.Paths.Fallback, perm); err != nil {
		return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
	}

	return m.Paths.Fallback, ensurePermission(m.Paths.Fallback, perm)
}

func fileInfo(shell string) FileInfo {
	switch shell {
	case "zsh":
		return FileInfo{Prefix: "_", Comment: "zsh completion files start with _"}
	case "fish":
		return FileInfo{Extension: ".fish", Comment: "fish completion files end in .fish"}
	case "powershell":
		return FileInfo{Extension: ".ps1", Comment: "PowerShell completion files end in .ps1"}
	}

	return FileInfo{Comment: "bash completion files are named after the command"}
}
