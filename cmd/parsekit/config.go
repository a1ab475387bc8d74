package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings are resolved from flags, PARSEKIT_* environment variables
// and an optional parsekit.yaml in the working directory, in that
// order of precedence.
type Settings struct {
	Grammar   string
	Verbosity int
}

func bindSettings(cmd *cobra.Command) {
	viper.SetEnvPrefix("parsekit")
	viper.AutomaticEnv()
	viper.BindPFlag("grammar", cmd.PersistentFlags().Lookup("grammar"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	viper.SetConfigName("parsekit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func settings() Settings {
	return Settings{
		Grammar:   viper.GetString("grammar"),
		Verbosity: viper.GetInt("verbose"),
	}
}
