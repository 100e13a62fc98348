package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
	"github.com/vovakirdan/bladefall/internal/registry"
)

// Options configures the host.
type Options struct {
	Runtime  core.RuntimeConfig
	Encoding Encoding
	Logger   *log.Logger
}

// Model is the Bubble Tea model that hosts one console game.
type Model struct {
	game       registry.Game
	display    *gfx.Bitmap
	config     core.RuntimeConfig
	encoding   Encoding
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		display:    gfx.NewDisplay(),
		config:     opts.Runtime,
		encoding:   opts.Encoding,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Button presses are collected until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	case key.Matches(msg, m.keys.Encoding):
		m.encoding = m.encoding.Next()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if b := m.keys.Button(msg); b != core.ButtonNone {
		m.inputFrame.Set(b)
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.FrameInterval())
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	logTransition(m.logger, prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.FrameInterval())
}

// logTransition reports mode and level changes.
func logTransition(logger *log.Logger, prev, next core.GameState) {
	switch {
	case prev.Mode == next.Mode && prev.Level == next.Level:
		return
	case next.GameOver:
		logger.Info("game over", "level", next.Level)
	case next.Mode == "game":
		logger.Info("level started", "level", next.Level)
	default:
		logger.Info("mode changed", "mode", next.Mode)
	}
}

// saveScreenshot saves the current display as ASCII art.
func (m *Model) saveScreenshot() {
	m.display.Clear()
	m.game.Render(m.display)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bladefall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.display.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.display.Clear()
	m.game.Render(m.display)

	var b strings.Builder
	b.WriteString(RenderDisplay(m.display, m.encoding))
	b.WriteString("\n")
	b.WriteString(StatusLine(m.gameState, m.paused))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

// Run starts the Bubble Tea program for a game that has already been reset.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
