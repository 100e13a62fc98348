package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bladefall/internal/core"
	"github.com/vovakirdan/bladefall/internal/gfx"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(gfx.Canvas)        {}
func (g *stubGame) State() core.GameState    { return core.GameState{Level: g.steps} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	require.True(t, Exists("zz-stub"))

	a, err := Create("zz-stub")
	require.NoError(t, err)
	b, err := Create("zz-stub")
	require.NoError(t, err)

	a.Step(core.NewInputFrame())
	assert.Equal(t, 1, a.State().Level)
	assert.Equal(t, 0, b.State().Level, "each Create returns a fresh instance")
}

func TestListSortedWithTitles(t *testing.T) {
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })
	Register("mm-stub", func() Game { return &stubGame{id: "mm-stub"} })

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "mm-stub" {
			assert.Equal(t, "Stub mm-stub", info.Title)
		}
	}
	assert.IsNonDecreasing(t, ids)
	assert.Contains(t, ids, "aa-stub")
	assert.Contains(t, ids, "mm-stub")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	require.ErrorIs(t, err, ErrUnknownGame)
	assert.Contains(t, err.Error(), "no-such-game")
	assert.False(t, Exists("no-such-game"))
}

func TestRegisterRejectsDuplicatesAndEmpty(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	assert.Panics(t, func() {
		Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
	})
	assert.Panics(t, func() { Register("", func() Game { return &stubGame{} }) })
	assert.Panics(t, func() { Register("nil-factory", nil) })
}
