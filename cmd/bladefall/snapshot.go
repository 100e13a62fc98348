package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/games/bladefall"
	"github.com/vovakirdan/bladefall/internal/gfx"
	"github.com/vovakirdan/bladefall/internal/platform/tui"
	"github.com/vovakirdan/bladefall/internal/registry"
)

var (
	flagInput  string
	flagTicks  int
	flagFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run scripted input headless and print the final frame",
	Long: `Runs the console without a terminal UI. Each character of --input is one
tick: u, d, l, r, c press up, down, left, right or center, any other character
presses nothing. Use '+' to press several buttons in one tick (e.g. "l+u").

The final frame is printed followed by the state as YAML.

Examples:
  bladefall snapshot --seed 1 --input c --ticks 120
  bladefall snapshot --seed 1 --input "c..............dd" --format ascii`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagInput, "input", "", "Scripted presses, one tick per character")
	snapshotCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run (default: length of --input)")
	snapshotCmd.Flags().StringVar(&flagFormat, "format", "braille", "Frame format: braille, blocks or ascii")
}

// parseScript splits the input into one frame per tick.
func parseScript(input string) []core.InputFrame {
	var frames []core.InputFrame
	for _, step := range splitTicks(input) {
		in := core.NewInputFrame()
		for _, r := range step {
			in.Set(core.ParseButton(r))
		}
		frames = append(frames, in)
	}
	return frames
}

// splitTicks groups "a+b" chords into one tick and every other rune into its own.
func splitTicks(input string) []string {
	var ticks []string
	for _, r := range input {
		if n := len(ticks); n > 0 && strings.HasSuffix(ticks[n-1], "+") {
			ticks[n-1] = strings.TrimSuffix(ticks[n-1], "+") + string(r)
			continue
		}
		if n := len(ticks); n > 0 && r == '+' {
			ticks[n-1] += "+"
			continue
		}
		ticks = append(ticks, string(r))
	}
	return ticks
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	game, err := registry.Create(bladefall.GameID)
	if err != nil {
		return err
	}
	bladefall.SetConfigPath(flagConfig)
	cfg := runtimeConfig(cmd, game)

	frames := parseScript(flagInput)
	ticks := max(flagTicks, len(frames))
	logger.Debug("running headless", "ticks", ticks, "seed", cfg.Seed)

	mode := game.State().Mode
	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		if i < len(frames) {
			in = frames[i]
		}
		st := game.Step(in).State
		if st.Mode != mode {
			logger.Info("mode changed", "tick", i+1, "mode", st.Mode, "level", st.Level)
			mode = st.Mode
		}
	}

	display := gfx.NewDisplay()
	game.Render(display)

	switch strings.ToLower(flagFormat) {
	case "ascii":
		fmt.Println(display.String())
	default:
		encoding, err := tui.ParseEncoding(flagFormat)
		if err != nil {
			return err
		}
		fmt.Println(tui.EncodeDisplay(display, encoding))
	}

	var state any = game.State()
	if console, ok := game.(*bladefall.Console); ok {
		state = console.Snapshot()
	}
	out, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
