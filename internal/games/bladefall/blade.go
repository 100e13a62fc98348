package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Blade geometry. The blade is drawn up and to the left of its bottom-right anchor.
const (
	BladeHeight  = 18
	BladeWidth   = 32
	BladeAngle   = 5
	BladeSharp   = 1
	BladePadding = 2

	// BladeTopSpeed is the default pixels-per-tick cap.
	BladeTopSpeed = 4
)

// BladeXOffset is the fixed x position of the blade's bottom-right corner.
const BladeXOffset = gfx.DisplayWidth - (NumLanes-1)*LaneWidth - BladePadding

// Blade falls toward the next obstacle row, accelerating each tick up to its top speed.
type Blade struct {
	bottomRight core.Point
	speed       core.Timer
}

// NewBlade returns a blade resting at the top of the display.
// A zero topSpeed falls back to BladeTopSpeed.
func NewBlade(topSpeed uint8) Blade {
	if topSpeed == 0 {
		topSpeed = BladeTopSpeed
	}
	return Blade{
		bottomRight: core.Pt(BladeXOffset, 0),
		speed:       core.NewTimer(topSpeed),
	}
}

// Y returns the blade's current height.
func (b Blade) Y() int {
	return b.bottomRight.Y
}

// Speed returns the pixels the next move will cover.
func (b Blade) Speed() int {
	return int(min(b.speed.Count(), b.speed.Threshold()))
}

// MoveTowards advances the blade toward height and reports whether it was
// already resting there. A settled blade loses its momentum.
func (b *Blade) MoveTowards(height int) bool {
	if b.bottomRight.Y == height {
		b.speed.Reset()
		return true
	}

	next := min(core.SaturatingAdd(b.bottomRight.Y, b.Speed()), height)
	b.speed.Tick()
	b.bottomRight = core.Pt(BladeXOffset, next)
	return false
}

// IsOffScreen reports whether the blade's top edge has passed the bottom of the display.
func (b Blade) IsOffScreen() bool {
	return b.bottomRight.Y-BladeHeight > gfx.DisplayHeight
}

// Points returns the outline of the blade followed by its sharp edge.
func (b Blade) Points() []core.Point {
	br := b.bottomRight
	return []core.Point{
		br,
		br.Sub(core.Pt(0, BladeHeight)),
		br.Sub(core.Pt(BladeWidth, BladeHeight)),
		br.Sub(core.Pt(BladeWidth, BladeAngle)),
		br,
		// sharp edge
		br.Sub(core.Pt(0, BladeSharp)),
		br.Sub(core.Pt(BladeWidth, BladeAngle+BladeSharp)),
	}
}

// Render draws the blade outline.
func (b Blade) Render(dst gfx.Canvas) {
	dst.Polyline(b.Points(), core.ColorOn)
}
