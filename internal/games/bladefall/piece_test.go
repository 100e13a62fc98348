package bladefall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bladefall/internal/core"
)

func TestEveryRotationHasFourCells(t *testing.T) {
	for _, s := range Shapes {
		p := NewPiece(s)
		for r := 0; r < 4; r++ {
			cells := p.Cells()
			require.Len(t, cells, 4, "%s at %d°", s, p.Rotation().Degrees())

			seen := make(map[core.Point]bool)
			for _, c := range cells {
				assert.False(t, seen[c], "%s at %d° repeats cell %v", s, p.Rotation().Degrees(), c)
				seen[c] = true
			}
			p.Rotate()
		}
	}
}

func TestFourRotationsRestoreTheMask(t *testing.T) {
	for _, s := range Shapes {
		p := NewPiece(s)
		original := p.Mask()

		for i := 0; i < 4; i++ {
			p.Rotate()
		}

		assert.Equal(t, original, p.Mask(), "shape %s", s)
		assert.Equal(t, R0, p.Rotation())
	}
}

func TestRotationCycle(t *testing.T) {
	assert.Equal(t, R90, R0.Next())
	assert.Equal(t, R180, R90.Next())
	assert.Equal(t, R270, R180.Next())
	assert.Equal(t, R0, R270.Next())
}

func TestPieceQueries(t *testing.T) {
	tests := []struct {
		name      string
		shape     Shape
		rotations int
		padLeft   int
		padRight  int
		lowest    int
		points    [GridWidth]int
	}{
		{"T spawn", ShapeT, 0, 0, 1, 2, [GridWidth]int{1, 2, 1, -1}},
		{"I flat", ShapeI, 0, 0, 0, 2, [GridWidth]int{2, 2, 2, 2}},
		{"I upright", ShapeI, 1, 2, 1, 3, [GridWidth]int{-1, -1, 3, -1}},
		{"O", ShapeO, 0, 1, 1, 2, [GridWidth]int{-1, 2, 2, -1}},
		{"J spawn", ShapeJ, 0, 0, 1, 2, [GridWidth]int{1, 1, 2, -1}},
		{"Z quarter turn", ShapeZ, 1, 1, 1, 2, [GridWidth]int{-1, 2, 1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiece(tt.shape)
			for i := 0; i < tt.rotations; i++ {
				p.Rotate()
			}

			assert.Equal(t, tt.padLeft, p.PaddingLeft(), "padding left")
			assert.Equal(t, tt.padRight, p.PaddingRight(), "padding right")
			assert.Equal(t, tt.lowest, p.LowestPoint(), "lowest point")
			assert.Equal(t, tt.points, p.CollisionPoints(), "collision points")
		})
	}
}

func TestShapeNames(t *testing.T) {
	var names string
	for _, s := range Shapes {
		names += s.String()
	}
	assert.Equal(t, "OIJLTSZ", names)
	assert.Equal(t, "?", Shape(42).String())
}
