package completion

import (
	"strings"
	"testing"

	"github.com/napalu/goarg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		Flags: []Flag{
			{Long: "name", Short: 'n', Description: "Who to greet", TakesValue: true, Type: "string"},
			{Long: "count", Description: "How many [times]", TakesValue: true, Type: "int"},
			{Long: "verbose", Short: 'V', Description: "Chatty output"},
		},
	}
}

func TestCompletion_Generate(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"__mytool_completion",
				`flags+=("--name[Who to greet]")`,
				`flags+=("-n[Who to greet]")`,
				`flags+=("--count[How many \[times\]]")`,
				"complete -F __mytool_completion mytool",
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef mytool",
				"'(--name)'{-n,--name}'+[Who to greet]:string:'",
				"'(--count)'--count'+[How many \\[times\\]]:int:'",
				"'(--verbose)'{-V,--verbose}'[Chatty output]'",
			},
		},
		{
			shell: "fish",
			contains: []string{
				"complete -c mytool -r -l name -s n -d 'Who to greet (string)'",
				"complete -c mytool -r -l count -d 'How many [times] (int)'",
				"complete -c mytool -f -l verbose -s V -d 'Chatty output'",
			},
		},
		{
			shell: "powershell",
			contains: []string{
				"Register-ArgumentCompleter -Native -CommandName mytool",
				"::new('--name', 'name', 'ParameterName', 'Who to greet')",
				"::new('-n', 'n', 'ParameterName', 'Who to greet')",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			script, err := Generate(tt.shell, "mytool", testData())
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, script, want)
			}
		})
	}
}

func TestCompletion_UnsupportedShell(t *testing.T) {
	_, err := Generate("tcsh", "mytool", testData())
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)

	_, err = GetGenerator("")
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)
}

func TestCompletion_EmptyData(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		script, err := Generate(shell, "mytool", Data{})
		require.NoError(t, err, shell)
		assert.False(t, strings.Contains(script, "--name"), shell)
	}
}

func TestCompletion_Escape(t *testing.T) {
	assert.Equal(t, `say \"hi\" for \$5`, escapeBash(`say "hi" for $5`))
	assert.Equal(t, `it's \[x\]`, escapeBash(`it's [x]`))
	assert.Equal(t, `it\'s`, escapeFish("it's"))
	assert.Equal(t, "it''s ``x`` `$y", escapePowerShell("it's `x` $y"))
	assert.Equal(t, `a\: \[b\]`, escapeZsh("a: [b]"))
}

func TestCompletion_BashApostrophe(t *testing.T) {
	data := Data{Flags: []Flag{{Long: "say", Description: "it's loud", TakesValue: true, Type: "string"}}}

	script, err := Generate("bash", "mytool", data)
	require.NoError(t, err)
	assert.Contains(t, script, `flags+=("--say[it's loud]")`)
	assert.NotContains(t, script, `\'`)
}
