package bladefall

import (
	"math"
	"strings"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// Play field geometry. Lanes 0 and 1 are reserved for obstacles and the wall;
// pieces live in lanes MinLane..NumLanes-1.
const (
	MinLane     = 2
	NumLanes    = 8
	LaneWidth   = 6
	NumRows     = gfx.DisplayHeight / LaneWidth
	RightBorder = 1

	// obstacleLane is scanned by the blade; wallLane starts as a solid wall.
	obstacleLane = 0
	wallLane     = 1
)

// LaneOffset is the pixel position of lane 0, row 0.
var LaneOffset = core.Pt(gfx.DisplayWidth-LaneWidth*NumLanes-RightBorder, 0)

// Cell is the content of one field slot.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSoft       // placed piece fragment or cut obstacle
	CellHard       // wall or uncut tough obstacle
)

// Present reports whether the slot holds a tile.
func (c Cell) Present() bool {
	return c != CellEmpty
}

// Field is the fixed lanes × rows grid. It is a plain array and copies by value.
type Field struct {
	lanes [NumLanes][NumRows]Cell
}

// NewField returns an empty field with the wall lane filled with hard tiles.
func NewField() Field {
	var f Field
	for row := range f.lanes[wallLane] {
		f.lanes[wallLane][row] = CellHard
	}
	return f
}

// At returns the cell at (lane, row); anything outside the field reads as hard,
// so callers that probe out of range see a wall.
func (f *Field) At(lane, row int) Cell {
	if !inField(lane, row) {
		return CellHard
	}
	return f.lanes[lane][row]
}

// Set changes one cell; out-of-range writes are ignored.
func (f *Field) Set(lane, row int, c Cell) {
	if !inField(lane, row) {
		return
	}
	f.lanes[lane][row] = c
}

func inField(lane, row int) bool {
	return lane >= 0 && lane < NumLanes && row >= 0 && row < NumRows
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// pieceRowOffset converts a pixel drop position into the field row of the
// piece mask's first row. The +1 accounts for a piece straddling two rows.
func pieceRowOffset(drop int) int {
	return floorDiv(drop, LaneWidth) + 1
}

// Collides reports whether the piece at the given lane and pixel drop overlaps
// the walls, leaves the field, or touches a tile. Cells above row 0 never collide.
func (f *Field) Collides(p Piece, lane, drop int) bool {
	// check left wall
	if lane+p.PaddingLeft() < MinLane {
		return true
	}

	// check right wall
	if lane+GridWidth-p.PaddingRight() > NumLanes {
		return true
	}

	offsetY := pieceRowOffset(drop)
	for _, c := range p.Cells() {
		row := offsetY + c.Y
		if row < 0 {
			continue
		}
		if f.At(lane+c.X, row).Present() {
			return true
		}
	}
	return false
}

// Persist writes the piece into the field as soft tiles. It returns false when
// any cell is at or above row 0, meaning the piece never fully entered the
// field; cells that land inside the field are written regardless.
func (f *Field) Persist(p Piece, lane, drop int) bool {
	ok := true
	offsetY := pieceRowOffset(drop)
	for _, c := range p.Cells() {
		row := offsetY + c.Y
		if row <= 0 {
			ok = false
		}
		f.Set(lane+c.X, row, CellSoft)
	}
	return ok
}

// rowComplete reports whether every piece lane holds a tile at row.
func (f *Field) rowComplete(row int) bool {
	for lane := MinLane; lane < NumLanes; lane++ {
		if !f.lanes[lane][row].Present() {
			return false
		}
	}
	return true
}

// CheckCompletedRows clears every complete row in one top-to-bottom pass and
// returns how many were cleared. Rows shifted into an index already scanned are
// not looked at again within the same call.
func (f *Field) CheckCompletedRows() int {
	cleared := 0
	for row := 0; row < NumRows; row++ {
		if !f.rowComplete(row) {
			continue
		}
		f.clearRow(row)
		f.shiftPreviousRows(row)
		cleared++
	}
	return cleared
}

// clearRow empties the soft tiles of a row in every lane; hard tiles stay.
func (f *Field) clearRow(row int) {
	for lane := range f.lanes {
		if f.lanes[lane][row] == CellSoft {
			f.lanes[lane][row] = CellEmpty
		}
	}
}

// shiftPreviousRows moves every row above row down by one in the piece lanes
// and empties row 0.
func (f *Field) shiftPreviousRows(row int) {
	for y := row - 1; y >= 0; y-- {
		for lane := MinLane; lane < NumLanes; lane++ {
			f.lanes[lane][y+1] = f.lanes[lane][y]
		}
	}
	for lane := MinLane; lane < NumLanes; lane++ {
		f.lanes[lane][0] = CellEmpty
	}
}

// AddObstacle seeds an obstacle pair into the reserved lanes. Row counts from the
// bottom of the field upward and saturates at the top; row 0 is below the field
// and is ignored.
func (f *Field) AddObstacle(row int, tough bool) {
	idx := max(NumRows-row, 0)
	c := CellSoft
	if tough {
		c = CellHard
	}
	f.Set(obstacleLane, idx, c)
	f.Set(wallLane, idx, c)
}

// NextObstacle returns the first obstacle row from the top and the blade height
// that rests on it. Without obstacles the height is math.MaxInt.
func (f *Field) NextObstacle() (row int, height int, ok bool) {
	for y, c := range f.lanes[obstacleLane] {
		if c.Present() {
			return y, y*LaneWidth - BladePadding, true
		}
	}
	return -1, math.MaxInt, false
}

// CutRow turns the reserved-lane tiles of a row soft. Cut tiles keep occupying
// their cells.
func (f *Field) CutRow(row int) {
	for _, lane := range [...]int{obstacleLane, wallLane} {
		if f.At(lane, row) == CellHard {
			f.lanes[lane][row] = CellSoft
		}
	}
}

// Obstacles counts the rows that still hold an obstacle in the obstacle lane.
func (f *Field) Obstacles() int {
	n := 0
	for _, c := range f.lanes[obstacleLane] {
		if c.Present() {
			n++
		}
	}
	return n
}

// Rows renders the field as text, one string per row: '#' hard, 'o' soft, '.' empty.
func (f *Field) Rows() []string {
	out := make([]string, NumRows)
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		sb.Reset()
		for lane := 0; lane < NumLanes; lane++ {
			sb.WriteByte(f.lanes[lane][row].glyph())
		}
		out[row] = sb.String()
	}
	return out
}

func (c Cell) glyph() byte {
	switch c {
	case CellHard:
		return '#'
	case CellSoft:
		return 'o'
	default:
		return '.'
	}
}

// Render draws every tile of the field.
func (f *Field) Render(dst gfx.Canvas) {
	for lane, column := range f.lanes {
		for row, c := range column {
			if !c.Present() {
				continue
			}
			renderTile(dst, LaneOffset.Add(core.Pt(lane*LaneWidth, row*LaneWidth)), c)
		}
	}
}

// renderTile draws one cell: hard tiles are solid, soft tiles get a dark inner outline.
func renderTile(dst gfx.Canvas, at core.Point, c Cell) {
	dst.FillRect(core.RectAt(at, LaneWidth, LaneWidth), core.ColorOn)
	if c != CellHard {
		dst.StrokeRect(core.RectAt(at.Add(core.Pt(1, 1)), LaneWidth-2, LaneWidth-2), core.ColorOff)
	}
}
