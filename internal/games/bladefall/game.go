package bladefall

import (
	"math"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Spawn position of a level's first piece.
const (
	InitialLane         = MinLane + 2
	InitialDropPosition = -4 * LaneWidth
	initialShape        = ShapeT
)

// SwitchTo is the result a finished level asks the context to act on.
// Its variants are NextLevel and GameOver.
type SwitchTo interface {
	isSwitchTo()
}

// NextLevel asks for the given level to start.
type NextLevel struct {
	Level int
}

// GameOver ends the run at the given level.
type GameOver struct {
	Level int
}

func (NextLevel) isSwitchTo() {}
func (GameOver) isSwitchTo()  {}

type pendingSwitch struct {
	target SwitchTo
	timer  core.Timer
}

// fallingPiece is the part of the game state player input mutates.
// Moves are applied to a copy and committed only if the copy does not collide.
type fallingPiece struct {
	piece     Piece
	lane      int
	drop      int
	dropSpeed int
}

// Game is one playable level.
type Game struct {
	level     int
	rules     Rules
	field     Field
	falling   fallingPiece
	blade     Blade
	dropTimer core.Timer
	narrator  *Narrator
	pending   *pendingSwitch
}

// NewGame creates a level with an empty field and the level's narrator, if any.
// Obstacles are added by the caller.
func NewGame(level int, rules Rules) *Game {
	return &Game{
		level:     level,
		rules:     rules,
		field:     NewField(),
		falling:   spawnAt(NewPiece(initialShape), InitialDropPosition),
		blade:     NewBlade(rules.BladeTopSpeed),
		dropTimer: core.NewTimer(rules.DropDelay),
		narrator:  rules.NarratorFor(level),
	}
}

// Level returns the level number.
func (g *Game) Level() int { return g.level }

// Field returns a copy of the play field.
func (g *Game) Field() Field { return g.field }

// Piece returns the falling piece.
func (g *Game) Piece() Piece { return g.falling.piece }

// Lane returns the lane of the falling piece's mask origin.
func (g *Game) Lane() int { return g.falling.lane }

// Drop returns the vertical pixel offset of the falling piece.
func (g *Game) Drop() int { return g.falling.drop }

// DropSpeed returns the descent steps applied per drop.
func (g *Game) DropSpeed() int { return g.falling.dropSpeed }

// Blade returns the blade state.
func (g *Game) Blade() Blade { return g.blade }

// Narrator returns the narrator on screen, or nil.
func (g *Game) Narrator() *Narrator { return g.narrator }

// Pending returns the armed transition regardless of whether its delay elapsed.
func (g *Game) Pending() (SwitchTo, bool) {
	if g.pending == nil {
		return nil, false
	}
	return g.pending.target, true
}

// AddObstacleAtRow seeds a soft obstacle pair, counting rows from the bottom.
func (g *Game) AddObstacleAtRow(row int) {
	g.field.AddObstacle(row, false)
}

// AddToughObstacleAtRow seeds a hard obstacle pair, counting rows from the bottom.
func (g *Game) AddToughObstacleAtRow(row int) {
	g.field.AddObstacle(row, true)
}

// ApplyLayout seeds every obstacle of a layout.
func (g *Game) ApplyLayout(l Layout) {
	for _, o := range l.Obstacles {
		g.field.AddObstacle(o.Row, o.Tough)
	}
}

func (g *Game) tryTo(update func(p *fallingPiece)) bool {
	next := g.falling
	update(&next)
	if g.field.Collides(next.piece, next.lane, next.drop) {
		return false
	}
	g.falling = next
	return true
}

// ButtonUp rotates the piece.
func (g *Game) ButtonUp() {
	g.tryTo(func(p *fallingPiece) {
		p.piece.Rotate()
	})
}

// ButtonDown drops the piece, or goes to the narrator while one is on screen.
func (g *Game) ButtonDown() {
	if g.narrator != nil {
		g.narrator = g.narrator.ButtonPressed()
		return
	}
	g.tryTo(func(p *fallingPiece) {
		p.dropSpeed = math.MaxInt
	})
}

// ButtonRight shifts the piece one lane right.
func (g *Game) ButtonRight() {
	g.tryTo(func(p *fallingPiece) {
		p.lane = core.SaturatingAdd(p.lane, 1)
	})
}

// ButtonLeft shifts the piece one lane left.
func (g *Game) ButtonLeft() {
	g.tryTo(func(p *fallingPiece) {
		p.lane = max(p.lane-1, 0)
	})
}

// ButtonCenter behaves like ButtonDown.
func (g *Game) ButtonCenter() {
	g.ButtonDown()
}

// Tick advances the level by one frame. Each stage may end the frame early:
// a pending transition, a moving blade, and the narrator all hold the piece.
func (g *Game) Tick(rng Squeezer) {
	if g.pending != nil {
		g.pending.timer.Tick()
		return
	} else if g.blade.IsOffScreen() {
		g.switchTo(NextLevel{Level: core.SaturatingAdd(g.level, 1)})
	}

	row, height, hasObstacle := g.field.NextObstacle()
	if !g.blade.MoveTowards(height) {
		return
	}
	if hasObstacle {
		g.field.CutRow(row)
	}

	if g.narrator != nil {
		g.narrator.Tick()
		return
	}

	if !g.dropTimer.Step() {
		return
	}

	for i := 0; i < g.falling.dropSpeed; i++ {
		moved := g.tryTo(func(p *fallingPiece) {
			p.drop = core.SaturatingAdd(p.drop, 1)
		})
		if moved {
			continue
		}
		if !g.field.Persist(g.falling.piece, g.falling.lane, g.falling.drop) {
			g.switchTo(GameOver{Level: g.level})
			return
		}
		g.spawnNextPiece(rng)
		break
	}

	g.field.CheckCompletedRows()
}

// switchTo arms a transition. Only the first call per level has an effect.
func (g *Game) switchTo(target SwitchTo) {
	if g.pending != nil {
		return
	}
	var delay uint8
	switch target.(type) {
	case NextLevel:
		delay = g.rules.NextLevelDelay
	case GameOver:
		delay = g.rules.GameOverDelay
	}
	g.pending = &pendingSwitch{target: target, timer: core.NewTimer(delay)}
}

// Transition returns the armed transition once its delay has elapsed.
func (g *Game) Transition() (SwitchTo, bool) {
	if g.pending == nil || !g.pending.timer.IsDue() {
		return nil, false
	}
	return g.pending.target, true
}

// spawnNextPiece places a new piece with its lowest cell just above the field.
func (g *Game) spawnNextPiece(rng Squeezer) {
	piece := NewPiece(NextShape(rng, g.falling.piece.Shape()))
	g.falling = spawnAt(piece, -piece.LowestPoint()*LaneWidth)
}

func spawnAt(p Piece, drop int) fallingPiece {
	return fallingPiece{piece: p, lane: InitialLane, drop: drop, dropSpeed: 1}
}

// Render draws the level. It does not change any state.
func (g *Game) Render(dst gfx.Canvas) {
	g.field.Render(dst)

	g.falling.piece.Render(dst, LaneOffset.Add(core.Pt(g.falling.lane*LaneWidth, g.falling.drop)))

	g.blade.Render(dst)

	// right border
	x := gfx.DisplayWidth - RightBorder
	dst.Line(core.Pt(x, 0), core.Pt(x, NumRows*LaneWidth), core.ColorOn)

	if g.narrator != nil {
		g.narrator.Render(dst)
	}

	if g.blade.IsOffScreen() {
		dst.Text("yey!", core.Pt(3, gfx.TextVerticalCenter(gfx.DisplayHeight)), gfx.BaselineAlphabetic, core.ColorOn)
	}
}
