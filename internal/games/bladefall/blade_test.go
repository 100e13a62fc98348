package bladefall

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bladefall/internal/core"
)

func TestBladeXOffset(t *testing.T) {
	assert.Equal(t, 20, BladeXOffset)
}

func TestBladeAtTargetIsSettled(t *testing.T) {
	b := NewBlade(BladeTopSpeed)

	assert.True(t, b.MoveTowards(0))
	assert.Equal(t, 0, b.Y(), "a settled blade does not move")
}

func TestBladeAccelerates(t *testing.T) {
	b := NewBlade(BladeTopSpeed)

	var heights []int
	for !b.MoveTowards(10) {
		heights = append(heights, b.Y())
		require.Less(t, len(heights), 20)
	}

	assert.Equal(t, []int{0, 1, 3, 6, 10}, heights)
	assert.Zero(t, b.Speed(), "settling drops the momentum")
}

func TestBladeSpeedIsCapped(t *testing.T) {
	b := NewBlade(BladeTopSpeed)

	last := b.Y()
	for i := 0; i < 12; i++ {
		b.MoveTowards(1000)
		assert.LessOrEqual(t, b.Y()-last, BladeTopSpeed)
		last = b.Y()
	}
	assert.Equal(t, 0+1+2+3+4*8, b.Y())
}

func TestBladeLeavesScreenWithoutObstacles(t *testing.T) {
	b := NewBlade(0)

	ticks := 0
	for !b.IsOffScreen() {
		assert.False(t, b.MoveTowards(math.MaxInt))
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Greater(t, b.Y()-BladeHeight, 128)
}

func TestBladePoints(t *testing.T) {
	b := NewBlade(BladeTopSpeed)

	assert.Equal(t, []core.Point{
		{X: 20, Y: 0},
		{X: 20, Y: -18},
		{X: -12, Y: -18},
		{X: -12, Y: -5},
		{X: 20, Y: 0},
		{X: 20, Y: -1},
		{X: -12, Y: -6},
	}, b.Points())
}
