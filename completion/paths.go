package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/napalu/goarg/errs"
)

// PathsFor returns the per-user completion directories of shell on the current platform
func PathsFor(shell string) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	return pathsFor(runtime.GOOS, home, shell)
}

func pathsFor(goos, home, shell string) (Paths, error) {
	switch shell {
	case "bash":
		return Paths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
			Comment:  "user-local bash-completion directory",
		}, nil
	case "zsh":
		return Paths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Comment:  "user-local zsh completion directory, must be on $fpath",
		}, nil
	case "fish":
		return Paths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
			Comment:   "fish user completions directory",
		}, nil
	case "powershell":
		paths := Paths{Extension: ".ps1", Comment: "PowerShell user completions directory"}
		switch goos {
		case "windows":
			dir := "WindowsPowerShell"
			if _, err := exec.LookPath("pwsh"); err == nil {
				dir = "PowerShell"
			}
			paths.Primary = filepath.Join(home, "Documents", dir, "Completions")
			paths.Fallback = filepath.Join(home, ".config", dir, "Completions")
		case "darwin":
			paths.Primary = filepath.Join(home, "Library", "PowerShell", "Completions")
			paths.Fallback = filepath.Join(home, ".config", "powershell", "Completions")
		default:
			paths.Primary = filepath.Join(home, ".config", "powershell", "Completions")
			paths.Fallback = filepath.Join(home, ".local", "share", "powershell", "Completions")
		}
		return paths, nil
	}

	return Paths{}, fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedShell, shell)
}

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w",
				path, actualPerm, perm, err)
		}
	}

	return nil
}
