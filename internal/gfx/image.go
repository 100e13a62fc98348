package gfx

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bladefall/internal/core"
)

// Image is a fixed-size 1-bpp picture.
type Image struct {
	Width  int
	Height int
	bits   []bool
}

// At returns the pixel at (x, y); outside the image reads as off.
func (img *Image) At(x, y int) core.Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return core.ColorOff
	}
	return core.Color(img.bits[y*img.Width+x])
}

// ParseImage builds an image from ASCII art where '#' is lit and anything else
// is dark. Blank leading and trailing lines are ignored; rows may be ragged.
func ParseImage(art string) (*Image, error) {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	if width == 0 {
		return nil, fmt.Errorf("gfx: empty image")
	}

	img := &Image{Width: width, Height: len(lines), bits: make([]bool, width*len(lines))}
	for y, l := range lines {
		for x := 0; x < len(l); x++ {
			img.bits[y*width+x] = l[x] == '#'
		}
	}
	return img, nil
}

// MustParseImage is like ParseImage but panics on error. For package-level assets.
func MustParseImage(art string) *Image {
	img, err := ParseImage(art)
	if err != nil {
		panic(err)
	}
	return img
}
