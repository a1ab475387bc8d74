package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsekit",
		Short: "Tokenize and parse inputs with the bundled example grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(settings().Verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().StringP("grammar", "g", "jsexpr", "grammar to use (jsexpr, jsexpr-arith, json, json-lexerless)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
	bindSettings(rootCmd)

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
