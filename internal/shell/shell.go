// Package shell generates the shell integration installed by `stargate init`.
package shell

import (
	"fmt"
	"slices"
	"strings"
)

// Supported lists the shells Integration accepts.
var Supported = []string{"bash", "zsh"}

// EvalCommands are the stargate subcommands whose stdout the sg function
// evaluates. Every other subcommand runs as-is.
var EvalCommands = []string{"switch", "sw", "travel", "root"}

const integrationTemplate = `sg() {
    case "$1" in
        %s)
            eval "$(command stargate "$@")"
            ;;
        *)
            command stargate "$@"
            ;;
    esac
}

# Switch to the configured default network
eval "$(command stargate switch --silent)"
`

// Integration returns the sg function for the named shell, to be appended to
// the shell profile, e.g. `stargate init zsh >> ~/.zshrc`.
func Integration(name string) (string, error) {
	if !slices.Contains(Supported, name) {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", name, strings.Join(Supported, ", "))
	}
	return fmt.Sprintf(integrationTemplate, strings.Join(EvalCommands, "|")), nil
}
