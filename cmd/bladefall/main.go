// bladefall is a falling-block puzzle for a 64×128 monochrome console, played in the terminal.
//
// Usage:
//
//	bladefall list              - List available games
//	bladefall play [game]       - Play a game (default: bladefall)
//	bladefall snapshot          - Run scripted ticks headless and print the final frame
//	bladefall levels            - Print obstacle layouts
//	bladefall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 20)
//	--seed <value>       - Set entropy seed for reproducible piece order (0 = OS entropy)
//	--config <path>      - Use a custom bladefall.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//
// Each global flag can also come from the environment (BLADEFALL_CONFIG,
// BLADEFALL_TICK_RATE, BLADEFALL_SEED, BLADEFALL_LOG_LEVEL, BLADEFALL_LOG_FILE).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bladefall/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/bladefall/internal/games/bladefall"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// BLADEFALL_* environment, read before any command runs
	envCfg config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bladefall",
	Short: "Bladefall - stack blocks, free the blade",
	Long: `Bladefall is a falling-block puzzle built for a tiny 64x128 display.
Complete rows so the blade can cut through the obstacles below; once it falls
off the screen the next level starts.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  snapshot  - Run a scripted session without a terminal
  levels    - Show the obstacle layouts
  config    - Show the effective configuration

Examples:
  bladefall play
  bladefall play --seed 42 --encoding blocks
  bladefall snapshot --input c....dddd --ticks 200
  bladefall levels --from 4 --count 6`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

// applyEnv fills the global flags the user did not set from BLADEFALL_* variables.
func applyEnv(cmd *cobra.Command, args []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	envCfg = e

	flags := cmd.Flags()
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Entropy seed (0 = OS entropy)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bladefall YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
