package completion

import (
	"path/filepath"
	"testing"

	"github.com/napalu/goarg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths_PerShell(t *testing.T) {
	home := filepath.Join("home", "ada")

	tests := []struct {
		goos      string
		shell     string
		primary   string
		extension string
	}{
		{"linux", "bash", filepath.Join(home, ".local", "share", "bash-completion", "completions"), ""},
		{"darwin", "zsh", filepath.Join(home, ".zsh", "completion"), ""},
		{"linux", "fish", filepath.Join(home, ".config", "fish", "completions"), ".fish"},
		{"linux", "powershell", filepath.Join(home, ".config", "powershell", "Completions"), ".ps1"},
		{"darwin", "powershell", filepath.Join(home, "Library", "PowerShell", "Completions"), ".ps1"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.shell, func(t *testing.T) {
			paths, err := pathsFor(tt.goos, home, tt.shell)
			require.NoError(t, err)
			assert.Equal(t, tt.primary, paths.Primary)
			assert.Equal(t, tt.extension, paths.Extension)
			assert.NotEmpty(t, paths.Fallback)
		})
	}
}

func TestPaths_Unsupported(t *testing.T) {
	_, err := pathsFor("linux", "/home/ada", "csh")
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)

	_, err = PathsFor("csh")
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)
}

func TestPaths_Absolute(t *testing.T) {
	paths, err := PathsFor("bash")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(paths.Primary))
}
