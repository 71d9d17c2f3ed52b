package completion

// CompletionValue is a value offered after a flag which expects one
type CompletionValue struct {
	Value       string
	Description string
}

// CompletionData is used to store the completion data of every configured flag alias
type CompletionData struct {
	// Flags holds every alias in usage order
	Flags []string
	// Descriptions maps an alias to the first line of its group's help text
	Descriptions map[string]string
	// TakesValue is true for aliases of groups which expect values
	TakesValue map[string]bool
	// FlagValues maps an alias to the values its group accepts
	FlagValues map[string][]CompletionValue
}

// Generator renders a completion script
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// Shells lists the shells GetGenerator supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GetGenerator returns the generator of shell, or false when the shell is not supported
func GetGenerator(shell string) (Generator, bool) {
	switch shell {
	case "bash":
		return &BashGenerator{}, true
	case "zsh":
		return &ZshGenerator{}, true
	case "fish":
		return &FishGenerator{}, true
	case "powershell", "pwsh":
		return &PowerShellGenerator{}, true
	default:
		return nil, false
	}
}
