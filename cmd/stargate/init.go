package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/shell"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <shell>",
		Short: "Print shell integration for your shell profile",
		Long: `Print the sg shell function. Supported shells: bash, zsh.

Examples:
  stargate init zsh >> ~/.zshrc
  stargate init bash >> ~/.bashrc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInit(w io.Writer, name string) error {
	script, err := shell.Integration(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}
