package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Encoding selects how display pixels become terminal cells.
type Encoding int

const (
	// EncodingBraille packs 2×4 pixels into one braille character (32×32 cells).
	EncodingBraille Encoding = iota
	// EncodingHalfBlock packs 1×2 pixels into one block character (64×64 cells).
	EncodingHalfBlock
)

func (e Encoding) String() string {
	if e == EncodingHalfBlock {
		return "blocks"
	}
	return "braille"
}

// Next cycles to the other encoding.
func (e Encoding) Next() Encoding {
	if e == EncodingBraille {
		return EncodingHalfBlock
	}
	return EncodingBraille
}

// ParseEncoding maps a flag value to an encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "", "braille":
		return EncodingBraille, nil
	case "blocks", "halfblock":
		return EncodingHalfBlock, nil
	default:
		return EncodingBraille, fmt.Errorf("tui: unknown encoding %q (want braille or blocks)", s)
	}
}

// FrameSize returns the terminal cells needed for the bordered display and
// the status and help lines.
func (e Encoding) FrameSize() (width, height int) {
	switch e {
	case EncodingHalfBlock:
		width, height = gfx.DisplayWidth, (gfx.DisplayHeight+1)/2
	default:
		width, height = (gfx.DisplayWidth+1)/2, (gfx.DisplayHeight+3)/4
	}
	return width + 2, height + 4
}

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// EncodeDisplay turns the bitmap into terminal lines.
func EncodeDisplay(b *gfx.Bitmap, e Encoding) string {
	if e == EncodingHalfBlock {
		return strings.Join(b.HalfBlock(), "\n")
	}
	return strings.Join(b.Braille(), "\n")
}

// RenderDisplay draws the encoded bitmap inside a border.
func RenderDisplay(b *gfx.Bitmap, e Encoding) string {
	return displayStyle.Render(EncodeDisplay(b, e))
}

// StatusLine describes the game state in one line.
func StatusLine(st core.GameState, paused bool) string {
	var text string
	switch {
	case st.GameOver:
		text = fmt.Sprintf("game over · held %d", st.Score)
	case st.Mode == "game":
		text = fmt.Sprintf("level %d", st.Level)
	default:
		text = "press enter"
	}
	if paused {
		return statusStyle.Render(text) + " " + pausedStyle.Render("paused")
	}
	return statusStyle.Render(text)
}
