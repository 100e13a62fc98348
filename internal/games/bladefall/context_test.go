package bladefall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

func requireGame(t *testing.T, c *Context) *Game {
	t.Helper()
	g, ok := c.Mode().(*Game)
	require.True(t, ok, "mode is %s", c.ModeName())
	return g
}

func assertLevelZeroLayout(t *testing.T, g *Game) {
	t.Helper()
	f := g.Field()
	assert.Equal(t, 0, g.Level())
	assert.Equal(t, 2, f.Obstacles())
	assert.Equal(t, CellSoft, f.At(obstacleLane, NumRows-8))
	assert.Equal(t, CellSoft, f.At(obstacleLane, NumRows-14))
}

func TestIntroCenterStartsLevelZero(t *testing.T) {
	c := NewContext(squeezer(1), DefaultRules())
	require.Equal(t, ModeIntro, c.ModeName())

	c.ButtonCenter()
	assert.Equal(t, ModeIntro, c.ModeName(), "the swap waits for the tick")

	c.Tick()

	assertLevelZeroLayout(t, requireGame(t, c))
}

func TestIntroStartButtons(t *testing.T) {
	for _, b := range []core.Button{core.ButtonDown, core.ButtonRight, core.ButtonCenter} {
		c := NewContext(squeezer(1), DefaultRules())
		c.Press(b)
		c.Tick()
		assert.Equal(t, ModeGame, c.ModeName(), "button %s", b)
	}

	for _, b := range []core.Button{core.ButtonUp, core.ButtonLeft, core.ButtonNone} {
		c := NewContext(squeezer(1), DefaultRules())
		c.Press(b)
		c.Tick()
		assert.Equal(t, ModeIntro, c.ModeName(), "button %s", b)
	}
}

func TestGameOverRestart(t *testing.T) {
	c := NewContext(squeezer(1), DefaultRules())
	c.mode = NewGameOverScreen(5)

	c.ButtonUp()
	screen := c.Mode().(*GameOverScreen)
	assert.Equal(t, Restart, screen.Selected())
	_, confirmed := screen.Decision()
	assert.False(t, confirmed)

	c.ButtonCenter()
	c.Tick()

	assertLevelZeroLayout(t, requireGame(t, c))
}

func TestGameOverQuit(t *testing.T) {
	c := NewContext(squeezer(1), DefaultRules())
	c.mode = NewGameOverScreen(2)

	c.ButtonDown()
	c.ButtonDown()
	c.ButtonRight()
	c.Tick()

	assert.Equal(t, ModeIntro, c.ModeName())
	assert.False(t, c.Mode().(*Intro).Start)
}

func TestGameOverWaitsForConfirmation(t *testing.T) {
	c := NewContext(squeezer(1), DefaultRules())
	c.mode = NewGameOverScreen(2)

	c.ButtonUp()
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	assert.Equal(t, ModeGameOver, c.ModeName())
}

func TestContextFollowsGameTransitions(t *testing.T) {
	rules := DefaultRules()

	t.Run("game over", func(t *testing.T) {
		c := NewContext(squeezer(1), rules)
		g := NewGame(4, rules)
		g.switchTo(GameOver{Level: 4})
		g.pending.timer.SetDue()
		c.mode = g

		c.Tick()

		screen, ok := c.Mode().(*GameOverScreen)
		require.True(t, ok)
		assert.Equal(t, 4, screen.Score())
		assert.Equal(t, Quit, screen.Selected())
	})

	t.Run("next level", func(t *testing.T) {
		c := NewContext(squeezer(1), rules)
		g := NewGame(6, rules)
		g.switchTo(NextLevel{Level: 7})
		g.pending.timer.SetDue()
		c.mode = g

		c.Tick()

		next := requireGame(t, c)
		f := next.Field()
		assert.Equal(t, 7, next.Level())
		assert.Equal(t, 4, f.Obstacles())
		assert.Equal(t, CellHard, f.At(obstacleLane, NumRows-6))
		assert.Equal(t, CellSoft, f.At(obstacleLane, NumRows-10))
		assert.Nil(t, next.Narrator())
	})
}

func TestLayoutIsChosenByLevel(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules.Fixed, 6)
	require.Len(t, rules.Cycle, 4)

	assert.Equal(t, "first cut", rules.LayoutFor(0).Name)
	assert.Equal(t, "zipper", rules.LayoutFor(5).Name)
	assert.Equal(t, rules.Cycle[2], rules.LayoutFor(6))
	assert.Equal(t, rules.Cycle[3], rules.LayoutFor(7))
	assert.Equal(t, rules.Cycle[0], rules.LayoutFor(8))
	assert.Equal(t, rules.Cycle[2], rules.LayoutFor(10))
	assert.Equal(t, rules.LayoutFor(0), rules.LayoutFor(-1))

	assert.Empty(t, Rules{}.LayoutFor(9).Obstacles)
}

func TestContextRenderPerMode(t *testing.T) {
	c := NewContext(squeezer(1), DefaultRules())

	intro := gfx.NewDisplay()
	c.Render(intro)
	assert.Positive(t, intro.Lit())

	c.ButtonCenter()
	c.Tick()
	level := gfx.NewDisplay()
	c.Render(level)
	assert.False(t, intro.Equal(level))

	c.mode = NewGameOverScreen(3)
	over := gfx.NewDisplay()
	c.Render(over)
	assert.Positive(t, over.Lit())
	assert.False(t, over.Equal(level))
}
