package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file (or stdin) and dump the syntax tree",
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
			out, err := runner.parseTrees(input)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}
}
