package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/config"
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
	"github.com/vovakirdan/bladefall/internal/random"
	"github.com/vovakirdan/bladefall/internal/registry"
)

// GameID is the registry identifier.
const GameID = "bladefall"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Console adapts a Context to the registry's Game interface: it loads the
// configuration, owns the random source and delivers one frame of input per Step.
type Console struct {
	ctx     *Context
	runtime core.RuntimeConfig
	cfg     config.BladefallConfig
	loadErr error
	ticks   uint64
}

// New creates an unstarted console. Call Reset before stepping it.
func New() *Console {
	return &Console{}
}

// ID returns the unique identifier for this game.
func (c *Console) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (c *Console) Title() string {
	return "Bladefall"
}

// Reset loads the configuration and starts over at the intro screen.
// A broken config file falls back to the built-in data; the error is kept
// for the host to report.
func (c *Console) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBladefall(configPath)
	if err != nil {
		cfg = config.DefaultBladefallConfig()
	}

	c.runtime = runtime
	c.cfg = cfg
	c.loadErr = err
	c.ticks = 0
	c.ctx = NewContext(random.New(random.ForSeed(runtime.Seed)), RulesFromConfig(cfg))
}

// Step delivers the frame's presses in device order, then ticks once.
func (c *Console) Step(in core.InputFrame) core.StepResult {
	if c.ctx == nil {
		c.Reset(core.DefaultConfig())
	}
	for _, b := range in.Presses() {
		c.ctx.Press(b)
	}
	c.ctx.Tick()
	c.ticks++
	return core.StepResult{State: c.State()}
}

// Render draws the active mode.
func (c *Console) Render(dst gfx.Canvas) {
	if c.ctx == nil {
		return
	}
	c.ctx.Render(dst)
}

// State reports the active mode and level.
func (c *Console) State() core.GameState {
	if c.ctx == nil {
		return core.GameState{Mode: ModeIntro}
	}
	st := core.GameState{Mode: c.ctx.ModeName()}
	switch m := c.ctx.Mode().(type) {
	case *Game:
		st.Level = m.Level()
		st.Score = m.Level()
	case *GameOverScreen:
		st.Level = m.Score()
		st.Score = m.Score()
		st.GameOver = true
	}
	return st
}

// Context returns the mode state machine.
func (c *Console) Context() *Context {
	return c.ctx
}

// Config returns the configuration the console was reset with.
func (c *Console) Config() config.BladefallConfig {
	return c.cfg
}

// ConfigError returns the error of the last config load, if it fell back to defaults.
func (c *Console) ConfigError() error {
	return c.loadErr
}

// Ticks returns the frames stepped since the last reset.
func (c *Console) Ticks() uint64 {
	return c.ticks
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
