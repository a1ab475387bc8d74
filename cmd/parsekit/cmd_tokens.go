package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Tokenize a file (or stdin) and dump the lex stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runnerFor(settings().Grammar)
			if err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return err
			}
			out, err := runner.tokens(input)
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}
}
