// Command stargate switches the active blockchain RPC endpoint of a shell.
//
// `stargate switch <network>` prints export statements that the `sg` shell
// function (installed with `stargate init zsh|bash`) evaluates:
//
//	sg switch arb       # ETH_RPC_URL now points at Arbitrum
//	sg root             # back to the local anvil node
//	sg explorer 0x...   # open the current network's explorer
//
// stdout of switch/root is consumed by eval; everything else a command wants
// the user to read goes to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/config"
	"github.com/dando385/stargate/internal/display"
	"github.com/dando385/stargate/internal/env"
	"github.com/dando385/stargate/internal/log"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stargate",
		Short: "Blockchain network switcher for Foundry",
		Long: `Switch ETH_RPC_URL and related variables between networks.

Networks can be named by canonical name, alias or chain ID:
  stargate switch mainnet
  stargate switch arb
  stargate switch 8453

Run 'stargate init zsh' (or bash) and add the output to your shell profile
so that 'sg switch <network>' updates the current shell.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = "debug"
			}
			log.Init(cmd.ErrOrStderr(), level)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file path (default $STARGATE_CONFIG or ~/.stargate/config.yaml)")
	cmd.PersistentFlags().String("log-level", envOr(env.LogLevelVar, "warn"), "Log level: debug|info|warn|error|off")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	cmd.AddCommand(
		switchCmd(),
		rootSwitchCmd(),
		currentCmd(),
		explorerCmd(),
		listCmd(),
		initCmd(),
		configCmd(),
	)

	return cmd
}

// configPath returns the --config flag value or the default location.
func configPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.Path()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := env.Load(); err != nil {
		log.CLI.Warn().Err(err).Msg("failed to load .env")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", display.Red("Error:"), err)
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(exitCode(err))
	}
}
