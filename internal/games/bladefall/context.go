package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Mode names reported by Context.ModeName.
const (
	ModeIntro    = "intro"
	ModeGame     = "game"
	ModeGameOver = "gameover"
)

// Mode is the active top-level screen: *Intro, *Game or *GameOverScreen.
type Mode interface {
	Render(dst gfx.Canvas)
	isMode()
}

func (*Intro) isMode()          {}
func (*Game) isMode()           {}
func (*GameOverScreen) isMode() {}

// Context owns exactly one mode and swaps it when the mode asks for it.
type Context struct {
	mode  Mode
	rng   Squeezer
	rules Rules
}

// NewContext starts at the intro screen.
func NewContext(rng Squeezer, rules Rules) *Context {
	return &Context{mode: NewIntro(), rng: rng, rules: rules}
}

// Mode returns the active mode.
func (c *Context) Mode() Mode {
	return c.mode
}

// ModeName returns a short name of the active mode.
func (c *Context) ModeName() string {
	switch c.mode.(type) {
	case *Game:
		return ModeGame
	case *GameOverScreen:
		return ModeGameOver
	default:
		return ModeIntro
	}
}

// Rules returns the rules levels are built from.
func (c *Context) Rules() Rules {
	return c.rules
}

// Press delivers one button press to the active mode.
func (c *Context) Press(b core.Button) {
	switch b {
	case core.ButtonUp:
		c.ButtonUp()
	case core.ButtonDown:
		c.ButtonDown()
	case core.ButtonLeft:
		c.ButtonLeft()
	case core.ButtonRight:
		c.ButtonRight()
	case core.ButtonCenter:
		c.ButtonCenter()
	}
}

func (c *Context) ButtonUp() {
	switch m := c.mode.(type) {
	case *Game:
		m.ButtonUp()
	case *GameOverScreen:
		m.ButtonUp()
	}
}

func (c *Context) ButtonDown() {
	switch m := c.mode.(type) {
	case *Intro:
		m.ButtonDown()
	case *Game:
		m.ButtonDown()
	case *GameOverScreen:
		m.ButtonDown()
	}
}

func (c *Context) ButtonLeft() {
	if m, ok := c.mode.(*Game); ok {
		m.ButtonLeft()
	}
}

func (c *Context) ButtonRight() {
	switch m := c.mode.(type) {
	case *Intro:
		m.ButtonRight()
	case *Game:
		m.ButtonRight()
	case *GameOverScreen:
		m.ButtonRight()
	}
}

func (c *Context) ButtonCenter() {
	switch m := c.mode.(type) {
	case *Intro:
		m.ButtonCenter()
	case *Game:
		m.ButtonCenter()
	case *GameOverScreen:
		m.ButtonCenter()
	}
}

// Tick advances the active mode and swaps modes when one is due.
func (c *Context) Tick() {
	switch m := c.mode.(type) {
	case *Intro:
		if m.Start {
			c.startLevel(0)
		}
	case *Game:
		m.Tick(c.rng)
		target, ok := m.Transition()
		if !ok {
			return
		}
		switch t := target.(type) {
		case NextLevel:
			c.startLevel(t.Level)
		case GameOver:
			c.mode = NewGameOverScreen(t.Level)
		}
	case *GameOverScreen:
		decision, ok := m.Decision()
		if !ok {
			return
		}
		switch decision {
		case Restart:
			c.startLevel(0)
		case Quit:
			c.mode = NewIntro()
		}
	}
}

// startLevel replaces the mode with a fresh level carrying its obstacle layout.
func (c *Context) startLevel(level int) {
	g := NewGame(level, c.rules)
	g.ApplyLayout(c.rules.LayoutFor(level))
	c.mode = g
}

// Render draws the active mode.
func (c *Context) Render(dst gfx.Canvas) {
	c.mode.Render(dst)
}
