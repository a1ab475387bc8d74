package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/parsekit/langserver"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server for the selected grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runnerFor(settings().Grammar)
			if err != nil {
				return err
			}
			server := langserver.NewServer(version, runner.check)
			return server.RunStdio()
		},
	}
}
