package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dando385/stargate/internal/networks"
)

const none = "-"

// NetworkList renders the registry for the list command.
type NetworkList struct {
	Networks []networks.Network
	Active   string // Canonical name of the network selected in this shell, if any
}

// Format writes the network table to w. The active network is marked with *.
func (l *NetworkList) Format(w io.Writer) error {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	firstColFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("", "Network", "Aliases", "Chain ID", "Explorer")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(firstColFmt).WithWriter(w)

	for _, n := range l.Networks {
		marker := ""
		if n.Name == l.Active {
			marker = "*"
		}
		tbl.AddRow(marker, n.Name, aliases(n), n.ChainID, orNone(n.ExplorerURL))
	}

	tbl.Print()
	return nil
}

// NetworkJSON is the machine-readable form of a registry entry.
type NetworkJSON struct {
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases"`
	ChainID        uint64   `json:"chain_id"`
	Explorer       string   `json:"explorer,omitempty"`
	RequiresAPIKey bool     `json:"requires_api_key"`
	Active         bool     `json:"active"`
}

// FormatJSON writes the list as an indented JSON array to w.
func (l *NetworkList) FormatJSON(w io.Writer) error {
	out := make([]NetworkJSON, len(l.Networks))
	for i, n := range l.Networks {
		a := n.Aliases
		if a == nil {
			a = []string{}
		}
		out[i] = NetworkJSON{
			Name:           n.Name,
			Aliases:        a,
			ChainID:        n.ChainID,
			Explorer:       n.ExplorerURL,
			RequiresAPIKey: n.RequiresAPIKey(),
			Active:         n.Name == l.Active,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode networks: %w", err)
	}
	return nil
}

func aliases(n networks.Network) string {
	if len(n.Aliases) == 0 {
		return none
	}
	return strings.Join(n.Aliases, ", ")
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}
