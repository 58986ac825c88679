package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/env"
	"github.com/dando385/stargate/internal/explorer"
	"github.com/dando385/stargate/internal/log"
)

func explorerCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "explorer [target]",
		Aliases: []string{"e"},
		Short:   "Open block explorer in browser",
		Long: `Open the current network's block explorer.

The target is classified by shape: 0x + 64 characters opens a transaction,
0x + 40 characters opens an address, anything else is searched.

Examples:
  sg explorer
  sg e 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045
  sg e 19000000 --print`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return runExplorer(cmd.OutOrStdout(), cmd.ErrOrStderr(), target, printOnly)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print URL instead of opening in browser")
	return cmd
}

func runExplorer(stdout, stderr io.Writer, target string, printOnly bool) error {
	s := env.Current()
	if s.Explorer == "" {
		name := s.Network
		if name == "" {
			name = "unknown network"
		}
		return fmt.Errorf("no block explorer available for %s", name)
	}

	url := explorer.BuildURL(s.Explorer, target)
	log.CLI.Debug().Str("network", s.Network).Str("url", url).Msg("explorer url")

	if printOnly {
		fmt.Fprintln(stdout, url)
		return nil
	}

	if err := explorer.Open(url); err != nil {
		fmt.Fprintf(stderr, "URL: %s\n", url)
		return err
	}
	return nil
}
