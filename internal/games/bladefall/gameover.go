package bladefall

import (
	"strconv"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

const (
	gameOverYOffset = 20
	scoreYOffset    = 50
	menuYOffset     = 95
	quitYOffset     = menuYOffset
	restartYOffset  = menuYOffset + 10
	cursorXOffset   = 2
	menuXOffset     = 10
)

// Decision is the choice offered after losing.
type Decision int

const (
	Quit Decision = iota
	Restart
)

func (d Decision) String() string {
	if d == Restart {
		return "restart"
	}
	return "quit"
}

// Toggle flips between the two choices.
func (d Decision) Toggle() Decision {
	if d == Quit {
		return Restart
	}
	return Quit
}

// GameOverScreen shows the reached level and a quit/restart menu.
type GameOverScreen struct {
	score     int
	decision  Decision
	confirmed bool
}

// NewGameOverScreen returns the menu with Quit selected.
func NewGameOverScreen(score int) *GameOverScreen {
	return &GameOverScreen{score: score, decision: Quit}
}

// Score returns the level the run ended on.
func (s *GameOverScreen) Score() int { return s.score }

// Selected returns the highlighted choice, confirmed or not.
func (s *GameOverScreen) Selected() Decision { return s.decision }

// Decision returns the choice once it has been confirmed.
func (s *GameOverScreen) Decision() (Decision, bool) {
	return s.decision, s.confirmed
}

func (s *GameOverScreen) ButtonUp()     { s.decision = s.decision.Toggle() }
func (s *GameOverScreen) ButtonDown()   { s.decision = s.decision.Toggle() }
func (s *GameOverScreen) ButtonRight()  { s.ButtonCenter() }
func (s *GameOverScreen) ButtonCenter() { s.confirmed = true }

// Render draws the title, the score and the menu with a cursor.
func (s *GameOverScreen) Render(dst gfx.Canvas) {
	renderBigCentered(dst, "Game over", gameOverYOffset)

	renderCentered(dst, "You held", scoreYOffset)
	renderCentered(dst, strconv.Itoa(s.score), scoreYOffset+10)
	renderCentered(dst, "levels", scoreYOffset+20)

	dst.Text("Give up", core.Pt(menuXOffset, quitYOffset), gfx.BaselineTop, core.ColorOn)
	dst.Text("Try again", core.Pt(menuXOffset, restartYOffset), gfx.BaselineTop, core.ColorOn)

	y := quitYOffset
	if s.decision == Restart {
		y = restartYOffset
	}
	dst.Text(">", core.Pt(cursorXOffset, y), gfx.BaselineTop, core.ColorOn)
}

func renderCentered(dst gfx.Canvas, text string, y int) {
	dst.Text(text, core.Pt(gfx.TextAlignCenter(text, gfx.DisplayWidth), y), gfx.BaselineTop, core.ColorOn)
}

// renderBigCentered fakes a heavier font by drawing the text twice, one pixel apart.
func renderBigCentered(dst gfx.Canvas, text string, y int) {
	x := gfx.Centered(gfx.DisplayWidth, gfx.TextWidth(text)+1)
	dst.Text(text, core.Pt(x, y), gfx.BaselineTop, core.ColorOn)
	dst.Text(text, core.Pt(x+1, y), gfx.BaselineTop, core.ColorOn)
}
