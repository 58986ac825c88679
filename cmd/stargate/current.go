package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dando385/stargate/internal/display"
	"github.com/dando385/stargate/internal/env"
)

func currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Aliases: []string{"c"},
		Short:   "Print current network name and chain ID",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd.OutOrStdout())
		},
	}
}

func runCurrent(w io.Writer) error {
	f := &display.Current{Session: env.Current()}
	return f.Format(w)
}
