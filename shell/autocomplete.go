package shell

import (
	"strings"
)

// ShellCompleter provides autocomplete for shell commands. Word
// submissions aren't completed; that would be telling.
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-pool")
	Args    []string // Possible argument values (for non-option arguments)
}

// commandMetadata maps command names to their options and arguments.
// These mirror the command implementations in api.go.
var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-pool"},
	},
	"show":   {},
	"scores": {},
	"setconfig": {
		Args: []string{"data-path", "lexicon", "pool-size", "table-size", "debug"},
	},
	"help": {
		Args: []string{"new", "show", "scores", "setconfig"},
	},
	"exit": {},
	"bye":  {},
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	fields := strings.Fields(prefix)

	// Completing the command itself.
	if len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(prefix, " ")) {
		word := ""
		if len(fields) == 1 {
			word = fields[0]
		}
		return candidates(commandNames(), word)
	}

	meta, ok := commandMetadata[fields[0]]
	if !ok {
		return nil, 0
	}
	word := ""
	if !strings.HasSuffix(prefix, " ") {
		word = fields[len(fields)-1]
	}
	if strings.HasPrefix(word, "-") {
		return candidates(meta.Options, word)
	}
	return candidates(append(append([]string{}, meta.Args...), meta.Options...), word)
}

func commandNames() []string {
	names := make([]string, 0, len(commandMetadata))
	for name := range commandMetadata {
		names = append(names, name)
	}
	return names
}

// candidates returns the completions for word, as the suffixes readline
// expects, along with the length of the already-typed prefix.
func candidates(choices []string, word string) ([][]rune, int) {
	var completions [][]rune
	for _, choice := range choices {
		if strings.HasPrefix(choice, word) {
			completions = append(completions, []rune(choice[len(word):]+" "))
		}
	}
	return completions, len(word)
}
