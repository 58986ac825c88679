package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/config"
	"github.com/dando385/stargate/internal/env"
	"github.com/dando385/stargate/internal/exports"
	"github.com/dando385/stargate/internal/log"
	"github.com/dando385/stargate/internal/networks"
)

func switchCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:     "switch [network]",
		Aliases: []string{"sw", "travel"},
		Short:   "Switch to a network",
		Long: `Print export statements for the given network. Meant to be evaluated
by the shell, which the sg function from 'stargate init' does for you.

Without an argument, switches to the configured default network.

Examples:
  eval "$(stargate switch mainnet)"
  sg switch arb
  sg sw 137`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runSwitch(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfgPath, query, silent)
		},
	}

	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "Suppress the status message")
	return cmd
}

func rootSwitchCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "root",
		Short: "Switch to anvil (local network)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			return runSwitch(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfgPath, networks.Local().Name, silent)
		},
	}

	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "Suppress the status message")
	return cmd
}

// runSwitch resolves query and writes the session exports to stdout.
// An empty query selects the configured default network.
func runSwitch(stdout, stderr io.Writer, cfgPath, query string, silent bool) error {
	cfg := config.Load(cfgPath)
	if query == "" {
		query = cfg.DefaultNetworkName()
	}

	n, err := networks.Lookup(query)
	if err != nil {
		return err
	}

	session, err := exports.NewSession(n, env.APIKey(cfg.APIKey))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(stdout, session.Format()); err != nil {
		return fmt.Errorf("write exports: %w", err)
	}

	log.CLI.Debug().
		Str("query", query).
		Stringer("session", session).
		Msg("switched network")

	if !silent {
		fmt.Fprintf(stderr, "Moved to %s (%d)\n", n.Name, n.ChainID)
	}
	return nil
}
