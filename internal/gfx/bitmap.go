package gfx

import (
	"strings"

	"github.com/vovakirdan/bladefall/internal/core"
)

// Bitmap is a monochrome framebuffer implementing Canvas.
// Out-of-bounds pixels are clipped silently.
type Bitmap struct {
	width  int
	height int
	pixels []bool
}

// NewBitmap creates a cleared bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// NewDisplay creates a bitmap the size of the device display.
func NewDisplay() *Bitmap {
	return NewBitmap(DisplayWidth, DisplayHeight)
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Bounds returns the rectangle covered by the bitmap.
func (b *Bitmap) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

// Clear turns every pixel off.
func (b *Bitmap) Clear() {
	b.Fill(core.ColorOff)
}

// Fill sets every pixel to the given color.
func (b *Bitmap) Fill(c core.Color) {
	for i := range b.pixels {
		b.pixels[i] = bool(c)
	}
}

// Set changes one pixel. Out-of-bounds coordinates are ignored.
func (b *Bitmap) Set(x, y int, c core.Color) {
	if !b.Bounds().Contains(x, y) {
		return
	}
	b.pixels[y*b.width+x] = bool(c)
}

// Get returns one pixel; out-of-bounds pixels read as off.
func (b *Bitmap) Get(x, y int) core.Color {
	if !b.Bounds().Contains(x, y) {
		return core.ColorOff
	}
	return core.Color(b.pixels[y*b.width+x])
}

// Lit returns the number of pixels that are on.
func (b *Bitmap) Lit() int {
	n := 0
	for _, p := range b.pixels {
		if p {
			n++
		}
	}
	return n
}

// Equal reports whether two bitmaps hold identical pixels.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.pixels {
		if b.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// FillRect fills a rectangular area.
func (b *Bitmap) FillRect(r core.Rect, c core.Color) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.pixels[y*b.width+x] = bool(c)
		}
	}
}

// StrokeRect draws a one pixel outline along the inside of r.
func (b *Bitmap) StrokeRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	b.hline(r.X, r.Y, r.W, c)
	b.hline(r.X, r.Bottom()-1, r.W, c)
	b.vline(r.X, r.Y, r.H, c)
	b.vline(r.Right()-1, r.Y, r.H, c)
}

func (b *Bitmap) hline(x, y, length int, c core.Color) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, c)
	}
}

func (b *Bitmap) vline(x, y, length int, c core.Color) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, c)
	}
}

// Line draws a straight line including both end points (Bresenham).
func (b *Bitmap) Line(from, to core.Point, c core.Color) {
	dx := core.Abs(to.X - from.X)
	dy := -core.Abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	err := dx + dy
	for {
		b.Set(x, y, c)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Polyline connects consecutive points with lines.
func (b *Bitmap) Polyline(points []core.Point, c core.Color) {
	if len(points) == 1 {
		b.Set(points[0].X, points[0].Y, c)
		return
	}
	for i := 1; i < len(points); i++ {
		b.Line(points[i-1], points[i], c)
	}
}

// Text draws a line of text in the fixed-width font. Glyph cells are not
// cleared; only lit glyph pixels are painted.
func (b *Bitmap) Text(text string, at core.Point, baseline Baseline, c core.Color) {
	top := at.Y
	switch baseline {
	case BaselineAlphabetic:
		top = at.Y - glyphRows + 1
	case BaselineMiddle:
		top = at.Y - GlyphHeight/2
	}

	for i, r := range []byte(text) {
		rows := glyph(r)
		x0 := at.X + i*GlyphWidth
		for gy, bits := range rows {
			for gx := 0; gx < glyphCols; gx++ {
				if bits&(1<<(glyphCols-1-gx)) != 0 {
					b.Set(x0+gx, top+gy, c)
				}
			}
		}
	}
}

// Image blits a 1-bpp image. Set pixels are drawn on, clear pixels off.
func (b *Bitmap) Image(img *Image, at core.Point) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b.Set(at.X+x, at.Y+y, img.At(x, y))
		}
	}
}

// String renders the bitmap with '#' for lit and '.' for dark pixels.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

var _ Canvas = (*Bitmap)(nil)
