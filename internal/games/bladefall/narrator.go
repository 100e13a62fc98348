package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Narrator layout.
const (
	narratorYOffset    = 7
	narratorLineHeight = 8
	narratorBackground = 9
	narratorBgPadding  = 1
)

// Narrator is a skippable text overlay shown at the start of a level.
// It waits for its delay, then reveals one character per tick across all lines.
type Narrator struct {
	lines  []string
	delay  core.Timer
	scroll core.Timer
}

// NewNarrator creates a narrator for the given lines. The lines are not copied.
func NewNarrator(delay uint8, lines []string) *Narrator {
	return &Narrator{
		lines:  lines,
		delay:  core.NewTimer(delay),
		scroll: core.InfiniteTimer(),
	}
}

// ButtonPressed handles a press and returns the narrator that should stay on screen,
// or nil once the text has been read. Presses during the delay are swallowed; a
// press while revealing shows the whole text.
func (n *Narrator) ButtonPressed() *Narrator {
	switch {
	case !n.Started():
		return n
	case n.Done():
		return nil
	default:
		n.Reveal()
		return n
	}
}

// Tick advances the delay, or the reveal once started.
func (n *Narrator) Tick() {
	if n.Started() {
		n.scroll.Tick()
	} else {
		n.delay.Tick()
	}
}

// Started reports whether the delay has elapsed.
func (n *Narrator) Started() bool {
	return n.delay.IsDue()
}

// Reveal shows all remaining text at once.
func (n *Narrator) Reveal() {
	n.scroll.SetDue()
}

// Revealed returns how many characters are visible.
func (n *Narrator) Revealed() int {
	return int(n.scroll.Count())
}

// Done reports whether every character is visible.
func (n *Narrator) Done() bool {
	return n.Revealed() >= n.length()
}

// Lines returns the script.
func (n *Narrator) Lines() []string {
	return n.lines
}

func (n *Narrator) length() int {
	total := 0
	for _, line := range n.lines {
		total = core.SaturatingAdd(total, len(line))
	}
	return total
}

// Render draws the revealed part of the script, each line on a black band.
func (n *Narrator) Render(dst gfx.Canvas) {
	if !n.Started() {
		return
	}

	budget := n.Revealed()
	for num, line := range n.lines {
		y := narratorYOffset + num*narratorLineHeight

		text := line
		if budget >= len(line) {
			budget -= len(line)
		} else {
			text = line[:budget]
			budget = 0
		}

		dst.FillRect(core.NewRect(0, y-narratorBgPadding, gfx.DisplayWidth, narratorBackground), core.ColorOff)
		dst.Text(text, core.Pt(gfx.TextAlignCenter(text, gfx.DisplayWidth), y), gfx.BaselineTop, core.ColorOn)

		if budget == 0 {
			break
		}
	}
}
