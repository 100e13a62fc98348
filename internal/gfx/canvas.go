// Package gfx provides the monochrome drawing surface games render into.
// Games draw through the Canvas interface; the platform decides how pixels reach
// the terminal.
package gfx

import "github.com/vovakirdan/bladefall/internal/core"

// Display dimensions of the target device.
const (
	DisplayWidth  = 64
	DisplayHeight = 128
)

// Baseline selects which part of a text line the anchor point refers to.
type Baseline int

const (
	// BaselineTop anchors the top edge of the glyph cell.
	BaselineTop Baseline = iota
	// BaselineAlphabetic anchors the bottom of capital letters.
	BaselineAlphabetic
	// BaselineMiddle anchors the vertical centre of the glyph cell.
	BaselineMiddle
)

// Canvas is the set of drawing primitives games use. Draw calls are infallible.
type Canvas interface {
	FillRect(r core.Rect, c core.Color)
	StrokeRect(r core.Rect, c core.Color)
	Line(from, to core.Point, c core.Color)
	Polyline(points []core.Point, c core.Color)
	Text(text string, at core.Point, baseline Baseline, c core.Color)
	Image(img *Image, at core.Point)
}

// Centered returns the offset that centres inner within outer.
func Centered(outer, inner int) int {
	return outer/2 - inner/2
}

// TextWidth returns the pixel width of text in the fixed-width font.
func TextWidth(text string) int {
	return len(text) * GlyphWidth
}

// TextAlignCenter returns the x offset centring text within width.
func TextAlignCenter(text string, width int) int {
	return Centered(width, TextWidth(text))
}

// TextVerticalCenter returns the y offset centring one text line within height.
func TextVerticalCenter(height int) int {
	return Centered(height, GlyphHeight)
}
