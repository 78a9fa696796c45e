package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with. Copy the output to
~/.lanerun/configs/lanerun.yaml and edit it to tune the game.

Examples:
  lanerun config
  lanerun config --defaults
  lanerun config --config ./my-lanerun.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if flagDefaults {
			os.Stdout.Write(config.DefaultYAML())
			return
		}
		data, err := config.Marshal(mustLoadConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}
