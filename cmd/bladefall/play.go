package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/games/bladefall"
	"github.com/vovakirdan/bladefall/internal/platform/tui"
	"github.com/vovakirdan/bladefall/internal/registry"
)

var flagEncoding string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The game defaults to bladefall.

Controls:
  Left/Right (A/D)    - Move the piece
  Up (W)              - Rotate
  Down (S)            - Drop / skip the narrator
  Enter/Space         - Select, same as Down in a level
  P/Esc               - Pause
  Tab                 - Switch braille/blocks display
  Ctrl+S              - Save a screenshot to ~/.bladefall/screenshots
  Q/Ctrl+C            - Quit

Examples:
  bladefall play
  bladefall play --encoding blocks
  bladefall play --seed 7 --log-file bladefall.log --log-level debug
  bladefall play --config ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagEncoding, "encoding", "braille", "Display encoding: braille or blocks")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := bladefall.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	encoding, err := tui.ParseEncoding(flagEncoding)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'bladefall list' to see available games)", err)
	}

	bladefall.SetConfigPath(flagConfig)
	cfg := runtimeConfig(cmd, game)
	logger.Info("starting", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)

	// Warn early if the display will not fit
	needW, needH := encoding.FrameSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Terminal is %dx%d, %s display needs %dx%d; try --encoding braille or a larger window.\n",
			w, h, encoding, needW, needH)
		logger.Warn("terminal too small", "width", w, "height", h, "need_width", needW, "need_height", needH)
	}

	if err := tui.Run(game, tui.Options{Runtime: cfg, Encoding: encoding, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// runtimeConfig resets the game with the flag values. The tick rate comes from
// --fps when given, then BLADEFALL_TICK_RATE, then the game's config.
func runtimeConfig(cmd *cobra.Command, game registry.Game) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	game.Reset(cfg)

	if console, ok := game.(*bladefall.Console); ok {
		if err := console.ConfigError(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; using built-in levels\n", err)
		}
		if rate := envCfg.Apply(console.Config()).TickRate; rate > 0 {
			cfg.TickRate = rate
		}
	}
	if cmd.Flags().Changed("fps") && flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
