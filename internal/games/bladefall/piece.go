package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

// GridWidth is the side of the square mask every piece rotation lives in.
const GridWidth = 4

// Shape is one of the seven tetrominoes.
type Shape int

const (
	ShapeO Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeT
	ShapeS
	ShapeZ
)

// Shapes lists every shape in declaration order.
var Shapes = [...]Shape{ShapeO, ShapeI, ShapeJ, ShapeL, ShapeT, ShapeS, ShapeZ}

func (s Shape) String() string {
	switch s {
	case ShapeO:
		return "O"
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Rotation is a quarter-turn state. Rotating advances R0→R90→R180→R270→R0.
type Rotation int

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// Next returns the following rotation state.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Mask is a 4×4 occupancy table indexed [x][y].
type Mask [GridWidth][GridWidth]bool

type cell struct{ x, y int }

// shapeCells holds the occupied cells per shape and rotation. There is no wall
// kick table: a rotation that would overlap something is simply rejected.
var shapeCells = [len(Shapes)][4][4]cell{
	ShapeO: {
		R0:   {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		R90:  {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		R180: {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		R270: {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	},
	ShapeI: {
		R0:   {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		R90:  {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		R180: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		R270: {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	ShapeJ: {
		R0:   {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		R90:  {{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		R180: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		R270: {{1, 0}, {1, 1}, {1, 2}, {2, 0}},
	},
	ShapeL: {
		R0:   {{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		R90:  {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		R180: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		R270: {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	},
	ShapeT: {
		R0:   {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		R90:  {{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		R180: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		R270: {{1, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	ShapeS: {
		R0:   {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		R90:  {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		R180: {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		R270: {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	ShapeZ: {
		R0:   {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		R90:  {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		R180: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		R270: {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
}

// MaskOf returns the occupancy mask of a shape in a rotation.
func MaskOf(s Shape, r Rotation) Mask {
	var m Mask
	for _, c := range shapeCells[s][r] {
		m[c.x][c.y] = true
	}
	return m
}

// Piece is a shape in a particular rotation. It is a small value and copies freely.
type Piece struct {
	shape    Shape
	rotation Rotation
	tiles    Mask
}

// NewPiece returns the shape in its spawn rotation.
func NewPiece(s Shape) Piece {
	return Piece{shape: s, rotation: R0, tiles: MaskOf(s, R0)}
}

// Shape returns the piece's shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// Rotation returns the current rotation state.
func (p Piece) Rotation() Rotation {
	return p.rotation
}

// Mask returns the current occupancy table.
func (p Piece) Mask() Mask {
	return p.tiles
}

// Rotate advances the piece by a quarter turn.
func (p *Piece) Rotate() {
	p.rotation = p.rotation.Next()
	p.tiles = MaskOf(p.shape, p.rotation)
}

// Cells returns the occupied cells as (x, y) offsets inside the mask.
func (p Piece) Cells() []core.Point {
	out := make([]core.Point, 0, 4)
	for x, column := range p.tiles {
		for y, filled := range column {
			if filled {
				out = append(out, core.Pt(x, y))
			}
		}
	}
	return out
}

// lowestInColumn returns the lowest occupied row of a column, or -1.
func lowestInColumn(column [GridWidth]bool) int {
	for y := GridWidth - 1; y >= 0; y-- {
		if column[y] {
			return y
		}
	}
	return -1
}

// LowestPoint returns the lowest occupied row over all columns (0 when empty).
func (p Piece) LowestPoint() int {
	lowest := 0
	for _, column := range p.tiles {
		lowest = max(lowest, lowestInColumn(column))
	}
	return lowest
}

// CollisionPoints returns the lowest occupied row per column, -1 for empty columns.
func (p Piece) CollisionPoints() [GridWidth]int {
	var points [GridWidth]int
	for x, column := range p.tiles {
		points[x] = lowestInColumn(column)
	}
	return points
}

func columnEmpty(column [GridWidth]bool) bool {
	for _, filled := range column {
		if filled {
			return false
		}
	}
	return true
}

// PaddingLeft counts the leading all-empty columns.
func (p Piece) PaddingLeft() int {
	n := 0
	for x := 0; x < GridWidth && columnEmpty(p.tiles[x]); x++ {
		n++
	}
	return n
}

// PaddingRight counts the trailing all-empty columns, scanning from the right edge.
func (p Piece) PaddingRight() int {
	n := 0
	for x := GridWidth - 1; x >= 0 && columnEmpty(p.tiles[x]); x-- {
		n++
	}
	return n
}

// Render draws the piece with its mask origin at the given pixel.
func (p Piece) Render(dst gfx.Canvas, at core.Point) {
	for _, c := range p.Cells() {
		renderTile(dst, at.Add(core.Pt(c.X*LaneWidth, c.Y*LaneWidth)), CellSoft)
	}
}
