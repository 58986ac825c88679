package display

import (
	"fmt"
	"io"

	"github.com/dando385/stargate/internal/config"
	"github.com/dando385/stargate/internal/env"
)

// Current formats the network selected in the current shell.
type Current struct {
	Session env.Session
}

// Format writes "<name> (<chain id>)" or a hint when nothing is selected.
func (c *Current) Format(w io.Writer) error {
	if !c.Session.Active() {
		fmt.Fprintln(w, "No network selected. Run 'sg switch <network>' first.")
		return nil
	}
	fmt.Fprintf(w, "%s (%s)\n", c.Session.Network, c.Session.ChainID)
	return nil
}

// ConfigSummary formats the stored configuration. The API key is reported as
// set or not set, never printed.
type ConfigSummary struct {
	Path      string
	Config    *config.Config
	EnvAPIKey bool // API key supplied through the environment
}

// Format writes one "key: value" line per setting.
func (s *ConfigSummary) Format(w io.Writer) error {
	key := Red("not set")
	switch {
	case s.EnvAPIKey:
		key = Green("set") + Dim(" (from "+env.APIKeyVar+")")
	case s.Config.HasAPIKey():
		key = Green("set")
	}

	network := s.Config.DefaultNetworkName()
	if s.Config.DefaultNetwork == "" {
		network += Dim(" (default)")
	}

	fmt.Fprintf(w, "%s %s\n", Bold("Config file:    "), s.Path)
	fmt.Fprintf(w, "%s %s\n", Bold("API key:        "), key)
	fmt.Fprintf(w, "%s %s\n", Bold("Default network:"), network)
	return nil
}
