package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames [][]core.Button
	state  core.GameState
	next   []core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Render(dst gfx.Canvas)    { dst.FillRect(core.NewRect(0, 0, 2, 4), core.ColorOn) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Presses())
	if len(g.next) > 0 {
		g.state, g.next = g.next[0], g.next[1:]
	}
	return core.StepResult{State: g.state}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapButtons(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Button
	}{
		{"up", core.ButtonUp},
		{"w", core.ButtonUp},
		{"down", core.ButtonDown},
		{"s", core.ButtonDown},
		{"left", core.ButtonLeft},
		{"a", core.ButtonLeft},
		{"right", core.ButtonRight},
		{"d", core.ButtonRight},
		{"enter", core.ButtonCenter},
		{" ", core.ButtonCenter},
		{"x", core.ButtonNone},
		{"q", core.ButtonNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keys.Button(keyMsg(tt.key)), "key %q", tt.key)
	}
}

func TestModelCollectsPressesUntilTick(t *testing.T) {
	game := &fakeGame{}
	var m tea.Model = NewModel(game, Options{Runtime: core.DefaultConfig()})

	m, _ = m.Update(keyMsg("left"))
	m, _ = m.Update(keyMsg("enter"))
	m, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd, "the tick loop continues")
	m, _ = m.Update(TickMsg{})

	require.Len(t, game.frames, 2)
	assert.Equal(t, []core.Button{core.ButtonLeft, core.ButtonCenter}, game.frames[0])
	assert.Empty(t, game.frames[1], "input is cleared after each tick")
}

func TestModelPauseStopsTheGame(t *testing.T) {
	game := &fakeGame{}
	var m tea.Model = NewModel(game, Options{Runtime: core.DefaultConfig()})

	m, _ = m.Update(keyMsg("p"))
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(TickMsg{})
	assert.Empty(t, game.frames)
	assert.Contains(t, m.View(), "paused")

	m, _ = m.Update(keyMsg("p"))
	_, _ = m.Update(TickMsg{})
	require.Len(t, game.frames, 1)
	assert.Empty(t, game.frames[0], "presses while paused are dropped")
}

func TestModelLogsModeChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	game := &fakeGame{next: []core.GameState{
		{Mode: "game", Level: 0},
		{Mode: "game", Level: 0},
		{Mode: "game", Level: 1},
		{Mode: "gameover", Level: 1, Score: 1, GameOver: true},
	}}
	var m tea.Model = NewModel(game, Options{Runtime: core.DefaultConfig(), Logger: logger})
	for i := 0; i < 4; i++ {
		m, _ = m.Update(TickMsg{})
	}

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "level started"))
	assert.Equal(t, 1, strings.Count(out, "game over"))
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, Options{Runtime: core.DefaultConfig()})

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestViewDrawsTheDisplay(t *testing.T) {
	m := NewModel(&fakeGame{}, Options{Runtime: core.DefaultConfig(), Encoding: EncodingHalfBlock})

	view := m.View()
	assert.Contains(t, view, "██")
	assert.Contains(t, view, "press enter")
}

func TestEncodings(t *testing.T) {
	e, err := ParseEncoding("blocks")
	require.NoError(t, err)
	assert.Equal(t, EncodingHalfBlock, e)
	assert.Equal(t, EncodingBraille, e.Next())

	_, err = ParseEncoding("sixel")
	assert.Error(t, err)

	w, h := EncodingBraille.FrameSize()
	assert.Equal(t, 34, w)
	assert.Equal(t, 36, h)

	b := gfx.NewDisplay()
	lines := strings.Split(EncodeDisplay(b, EncodingBraille), "\n")
	assert.Len(t, lines, 32)
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, StatusLine(core.GameState{Mode: "game", Level: 3}, false), "level 3")
	assert.Contains(t, StatusLine(core.GameState{Mode: "gameover", GameOver: true, Score: 5}, false), "held 5")
	assert.Contains(t, StatusLine(core.GameState{Mode: "intro"}, true), "paused")
}
