package gfx

import "github.com/vovakirdan/bladefall/internal/core"

// brailleDots maps a pixel offset inside a 2×4 cell to its braille dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille encodes the bitmap as braille characters, 2×4 pixels per character.
func (b *Bitmap) Braille() []string {
	rows := (b.height + 3) / 4
	cols := (b.width + 1) / 2
	out := make([]string, rows)

	line := make([]rune, cols)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			r := rune(0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if b.Get(cx*2+dx, cy*4+dy) {
						r |= brailleDots[dy][dx]
					}
				}
			}
			line[cx] = r
		}
		out[cy] = string(line)
	}
	return out
}

// HalfBlock encodes the bitmap with half-block characters, 1×2 pixels per character.
func (b *Bitmap) HalfBlock() []string {
	rows := (b.height + 1) / 2
	out := make([]string, rows)

	line := make([]rune, b.width)
	for cy := 0; cy < rows; cy++ {
		for x := 0; x < b.width; x++ {
			top, bottom := b.Get(x, cy*2) == core.ColorOn, b.Get(x, cy*2+1) == core.ColorOn
			switch {
			case top && bottom:
				line[x] = '█'
			case top:
				line[x] = '▀'
			case bottom:
				line[x] = '▄'
			default:
				line[x] = ' '
			}
		}
		out[cy] = string(line)
	}
	return out
}
