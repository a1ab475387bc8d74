package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the selected grammar in an EBNF-like form",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runnerFor(settings().Grammar)
			if err != nil {
				return err
			}
			fmt.Print(runner.grammar())
			return nil
		},
	}
}
