package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/display"
	"github.com/dando385/stargate/internal/env"
	"github.com/dando385/stargate/internal/networks"
)

func listCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all available networks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal|json")
	return cmd
}

func runList(w io.Writer, format string) error {
	l := &display.NetworkList{
		Networks: networks.All(),
		Active:   env.Current().Network,
	}

	switch format {
	case "terminal":
		return l.Format(w)
	case "json":
		display.DisableColors()
		return l.FormatJSON(w)
	default:
		return fmt.Errorf("unknown format %q (expected terminal or json)", format)
	}
}
