package bladefall

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Snapshot is a flat copy of the observable state, used by the headless
// runner and determinism tests.
type Snapshot struct {
	Tick uint64 `yaml:"tick"`
	Mode string `yaml:"mode"`

	// Game mode
	Level     int      `yaml:"level"`
	Shape     string   `yaml:"shape,omitempty"`
	Rotation  int      `yaml:"rotation"`
	Lane      int      `yaml:"lane"`
	Drop      int      `yaml:"drop"`
	DropSpeed int      `yaml:"drop_speed"`
	BladeY    int      `yaml:"blade_y"`
	Narrating bool     `yaml:"narrating"`
	Pending   string   `yaml:"pending,omitempty"` // "", "next:<level>" or "gameover:<level>"
	Field     []string `yaml:"field,omitempty"`

	// GameOver mode
	Score    int    `yaml:"score,omitempty"`
	Decision string `yaml:"decision,omitempty"`
}

// Snapshot returns the current state.
func (c *Console) Snapshot() Snapshot {
	snap := Snapshot{Tick: c.ticks, Mode: ModeIntro}
	if c.ctx == nil {
		return snap
	}
	snap.Mode = c.ctx.ModeName()

	switch m := c.ctx.Mode().(type) {
	case *Game:
		f := m.Field()
		snap.Level = m.Level()
		snap.Shape = m.Piece().Shape().String()
		snap.Rotation = m.Piece().Rotation().Degrees()
		snap.Lane = m.Lane()
		snap.Drop = m.Drop()
		snap.DropSpeed = m.DropSpeed()
		snap.BladeY = m.Blade().Y()
		snap.Narrating = m.Narrator() != nil
		snap.Field = f.Rows()
		if target, ok := m.Pending(); ok {
			snap.Pending = describeSwitch(target)
		}
	case *GameOverScreen:
		snap.Score = m.Score()
		snap.Decision = m.Selected().String()
	}
	return snap
}

func describeSwitch(target SwitchTo) string {
	switch t := target.(type) {
	case NextLevel:
		return "next:" + strconv.Itoa(t.Level)
	case GameOver:
		return "gameover:" + strconv.Itoa(t.Level)
	default:
		return ""
	}
}

// Hash returns a digest of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fields := []string{
		snap.Mode,
		strconv.Itoa(snap.Level),
		snap.Shape,
		strconv.Itoa(snap.Rotation),
		strconv.Itoa(snap.Lane),
		strconv.Itoa(snap.Drop),
		strconv.Itoa(snap.DropSpeed),
		strconv.Itoa(snap.BladeY),
		strconv.FormatBool(snap.Narrating),
		snap.Pending,
		strings.Join(snap.Field, "/"),
		strconv.Itoa(snap.Score),
		snap.Decision,
	}
	for _, f := range fields {
		_, _ = h.Write([]byte(f))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
