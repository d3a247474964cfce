package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/pars/arith"
	"github.com/dhamidi/pars/lsp"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for the demo grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := lsp.NewServer(arith.Check, "0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity (0-2)")

	return cmd
}
