package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() CompletionData {
	return CompletionData{
		Flags: []string{"-c", "--color", "-h", "--help"},
		Descriptions: map[string]string{
			"-c":      "Output color",
			"--color": "Output color",
			"-h":      "Display usage instructions.",
			"--help":  "Display usage instructions.",
		},
		TakesValue: map[string]bool{"-c": true, "--color": true},
		FlagValues: map[string][]CompletionValue{
			"-c":      {{Value: "red"}, {Value: "green"}},
			"--color": {{Value: "red"}, {Value: "green"}},
		},
	}
}

func TestGetGenerator(t *testing.T) {
	for _, shell := range Shells {
		g, ok := GetGenerator(shell)
		assert.True(t, ok, shell)
		assert.NotNil(t, g)
	}

	_, ok := GetGenerator("tcsh")
	assert.False(t, ok)
}

func TestGenerators(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F __my_app_completion my-app", "--color)", `compgen -W "red green"`, `compgen -W "-c --color -h --help"`}},
		{"zsh", []string{"#compdef my-app", "'*--color[Output color]:value:(red green)'", "'*-h[Display usage instructions.]'"}},
		{"fish", []string{"complete -c my-app -l color -r -f -a 'red green' -d 'Output color'", "complete -c my-app -s h -d 'Display usage instructions.'"}},
		{"powershell", []string{"-CommandName 'my-app'", "'--color' {", "'red', 'red', 'ParameterValue'", "'--help', '--help', 'ParameterName'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			g, ok := GetGenerator(tt.shell)
			require.True(t, ok)
			script := g.Generate("my-app", testData())
			for _, s := range tt.contains {
				assert.Contains(t, script, s)
			}
		})
	}
}

func TestEscaping(t *testing.T) {
	assert.Equal(t, `it\'s \$HOME`, escapeBash(`it's $HOME`))
	assert.Equal(t, `it\'s`, escapeFish("it's"))
	assert.Equal(t, `it''s`, escapePowerShell("it's"))
	assert.Equal(t, `a\[b\]\:c`, escapeZsh("a[b]:c"))
	assert.Equal(t, "my_app_x", functionName("my-app.x"))
}
