package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bladefall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration bladefall would play with, after the search order
(--config, ~/.bladefall/configs, ./configs, built-in) and BLADEFALL_TICK_RATE.
With --defaults it prints the built-in file, a starting point for custom levels.

Examples:
  bladefall config
  bladefall config --defaults > ~/.bladefall/configs/bladefall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadBladefall(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	data, err := config.Marshal(envCfg.Apply(cfg))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
