package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/config"
	"github.com/dando385/stargate/internal/display"
	"github.com/dando385/stargate/internal/env"
	"github.com/dando385/stargate/internal/prompt"
)

// readSecret is replaced in tests.
var readSecret = prompt.Secret

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Read and update ~/.stargate/config.yaml.

Examples:
  stargate config set api-key
  stargate config set default-network arb
  stargate config show`,
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Set a configuration value",
	}
	set.AddCommand(configSetAPIKeyCmd(), configSetDefaultNetworkCmd())

	get := &cobra.Command{
		Use:   "get",
		Short: "Print a configuration value",
	}
	get.AddCommand(configGetDefaultNetworkCmd())

	cmd.AddCommand(set, get, configShowCmd())
	return cmd
}

func configSetAPIKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api-key [key]",
		Short: "Store the Alchemy API key",
		Long: `Store the Alchemy API key. Without an argument the key is read from
stdin, without echo when stdin is a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			key := ""
			if len(args) > 0 {
				key = args[0]
			}
			return runConfigSetAPIKey(cmd.OutOrStdout(), cfgPath, key)
		},
	}
}

func runConfigSetAPIKey(w io.Writer, cfgPath, key string) error {
	if key == "" {
		var err error
		if key, err = readSecret("Enter your Alchemy API key: "); err != nil {
			return err
		}
	}

	cfg := config.Load(cfgPath)
	if err := cfg.SetAPIKey(key); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	fmt.Fprintln(w, display.Green("API key saved successfully."))
	return nil
}

func configSetDefaultNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-network <network>",
		Short: "Set the network used by 'switch' without an argument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			return runConfigSetDefaultNetwork(cmd.OutOrStdout(), cfgPath, args[0])
		},
	}
}

func runConfigSetDefaultNetwork(w io.Writer, cfgPath, query string) error {
	cfg := config.Load(cfgPath)
	n, err := cfg.SetDefaultNetwork(query)
	if err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "Default network set to %s (%d)\n", n.Name, n.ChainID)
	return nil
}

func configGetDefaultNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-network",
		Short: "Print the default network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Load(cfgPath).DefaultNetworkName())
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := configPath(cmd)
			if err != nil {
				return err
			}
			return runConfigShow(cmd.OutOrStdout(), cfgPath)
		},
	}
}

func runConfigShow(w io.Writer, cfgPath string) error {
	f := &display.ConfigSummary{
		Path:      cfgPath,
		Config:    config.Load(cfgPath),
		EnvAPIKey: os.Getenv(env.APIKeyVar) != "",
	}
	return f.Format(w)
}
