package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// scriptedSqueezer replays fixed words, repeating the last one when exhausted.
type scriptedSqueezer struct {
	words []uint64
	drawn int
}

func squeezer(words ...uint64) *scriptedSqueezer {
	return &scriptedSqueezer{words: words}
}

func (s *scriptedSqueezer) Squeeze() uint64 {
	i := min(s.drawn, len(s.words)-1)
	s.drawn++
	return s.words[i]
}

type textCall struct {
	text string
	at   core.Point
}

// recordingCanvas keeps text draws and counts everything else.
type recordingCanvas struct {
	texts []textCall
	calls int
}

func (c *recordingCanvas) FillRect(core.Rect, core.Color)     { c.calls++ }
func (c *recordingCanvas) StrokeRect(core.Rect, core.Color)   { c.calls++ }
func (c *recordingCanvas) Line(_, _ core.Point, _ core.Color) { c.calls++ }
func (c *recordingCanvas) Polyline([]core.Point, core.Color)  { c.calls++ }
func (c *recordingCanvas) Image(*gfx.Image, core.Point)       { c.calls++ }
func (c *recordingCanvas) Text(s string, at core.Point, _ gfx.Baseline, _ core.Color) {
	c.calls++
	c.texts = append(c.texts, textCall{text: s, at: at})
}

var _ gfx.Canvas = (*recordingCanvas)(nil)

// settleBlade parks the blade on the field's first obstacle.
func settleBlade(g *Game) {
	_, height, _ := g.field.NextObstacle()
	g.blade.bottomRight = core.Pt(BladeXOffset, height)
}
