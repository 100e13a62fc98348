package gfx

// Fixed-width font: 3×5 glyphs in a 4×6 cell, which fits 16 characters across the
// display. Lowercase letters share the uppercase shapes.
const (
	GlyphWidth  = 4
	GlyphHeight = 6

	glyphCols = 3
	glyphRows = 5
)

// unknownGlyph is drawn for bytes outside the table.
var unknownGlyph = [glyphRows]uint8{0b111, 0b101, 0b101, 0b101, 0b111}

var glyphs = map[byte][glyphRows]uint8{
	' ':  {0b000, 0b000, 0b000, 0b000, 0b000},
	'!':  {0b010, 0b010, 0b010, 0b000, 0b010},
	'"':  {0b101, 0b101, 0b000, 0b000, 0b000},
	'#':  {0b101, 0b111, 0b101, 0b111, 0b101},
	'$':  {0b011, 0b110, 0b010, 0b011, 0b110},
	'%':  {0b101, 0b001, 0b010, 0b100, 0b101},
	'&':  {0b010, 0b101, 0b010, 0b101, 0b011},
	'\'': {0b010, 0b010, 0b000, 0b000, 0b000},
	'(':  {0b001, 0b010, 0b010, 0b010, 0b001},
	')':  {0b100, 0b010, 0b010, 0b010, 0b100},
	'*':  {0b000, 0b101, 0b010, 0b101, 0b000},
	'+':  {0b000, 0b010, 0b111, 0b010, 0b000},
	',':  {0b000, 0b000, 0b000, 0b010, 0b100},
	'-':  {0b000, 0b000, 0b111, 0b000, 0b000},
	'.':  {0b000, 0b000, 0b000, 0b000, 0b010},
	'/':  {0b001, 0b001, 0b010, 0b100, 0b100},
	'0':  {0b111, 0b101, 0b101, 0b101, 0b111},
	'1':  {0b010, 0b110, 0b010, 0b010, 0b111},
	'2':  {0b111, 0b001, 0b111, 0b100, 0b111},
	'3':  {0b111, 0b001, 0b011, 0b001, 0b111},
	'4':  {0b101, 0b101, 0b111, 0b001, 0b001},
	'5':  {0b111, 0b100, 0b111, 0b001, 0b111},
	'6':  {0b111, 0b100, 0b111, 0b101, 0b111},
	'7':  {0b111, 0b001, 0b010, 0b010, 0b010},
	'8':  {0b111, 0b101, 0b111, 0b101, 0b111},
	'9':  {0b111, 0b101, 0b111, 0b001, 0b111},
	':':  {0b000, 0b010, 0b000, 0b010, 0b000},
	';':  {0b000, 0b010, 0b000, 0b010, 0b100},
	'<':  {0b001, 0b010, 0b100, 0b010, 0b001},
	'=':  {0b000, 0b111, 0b000, 0b111, 0b000},
	'>':  {0b100, 0b010, 0b001, 0b010, 0b100},
	'?':  {0b111, 0b001, 0b010, 0b000, 0b010},
	'@':  {0b010, 0b101, 0b111, 0b100, 0b011},
	'A':  {0b010, 0b101, 0b111, 0b101, 0b101},
	'B':  {0b110, 0b101, 0b110, 0b101, 0b110},
	'C':  {0b011, 0b100, 0b100, 0b100, 0b011},
	'D':  {0b110, 0b101, 0b101, 0b101, 0b110},
	'E':  {0b111, 0b100, 0b110, 0b100, 0b111},
	'F':  {0b111, 0b100, 0b110, 0b100, 0b100},
	'G':  {0b011, 0b100, 0b101, 0b101, 0b011},
	'H':  {0b101, 0b101, 0b111, 0b101, 0b101},
	'I':  {0b111, 0b010, 0b010, 0b010, 0b111},
	'J':  {0b001, 0b001, 0b001, 0b101, 0b010},
	'K':  {0b101, 0b101, 0b110, 0b101, 0b101},
	'L':  {0b100, 0b100, 0b100, 0b100, 0b111},
	'M':  {0b101, 0b111, 0b111, 0b101, 0b101},
	'N':  {0b110, 0b101, 0b101, 0b101, 0b101},
	'O':  {0b010, 0b101, 0b101, 0b101, 0b010},
	'P':  {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q':  {0b010, 0b101, 0b101, 0b110, 0b011},
	'R':  {0b110, 0b101, 0b110, 0b101, 0b101},
	'S':  {0b011, 0b100, 0b010, 0b001, 0b110},
	'T':  {0b111, 0b010, 0b010, 0b010, 0b010},
	'U':  {0b101, 0b101, 0b101, 0b101, 0b111},
	'V':  {0b101, 0b101, 0b101, 0b101, 0b010},
	'W':  {0b101, 0b101, 0b111, 0b111, 0b101},
	'X':  {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y':  {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z':  {0b111, 0b001, 0b010, 0b100, 0b111},
	'[':  {0b011, 0b010, 0b010, 0b010, 0b011},
	'\\': {0b100, 0b100, 0b010, 0b001, 0b001},
	']':  {0b110, 0b010, 0b010, 0b010, 0b110},
	'^':  {0b010, 0b101, 0b000, 0b000, 0b000},
	'_':  {0b000, 0b000, 0b000, 0b000, 0b111},
	'`':  {0b100, 0b010, 0b000, 0b000, 0b000},
	'{':  {0b011, 0b010, 0b110, 0b010, 0b011},
	'|':  {0b010, 0b010, 0b010, 0b010, 0b010},
	'}':  {0b110, 0b010, 0b011, 0b010, 0b110},
	'~':  {0b000, 0b011, 0b110, 0b000, 0b000},
}

func glyph(c byte) [glyphRows]uint8 {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if g, ok := glyphs[c]; ok {
		return g
	}
	return unknownGlyph
}
