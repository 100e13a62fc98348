package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("BLADEFALL_CONFIG", "/tmp/levels.yaml")
	t.Setenv("BLADEFALL_TICK_RATE", "30")
	t.Setenv("BLADEFALL_SEED", "42")
	t.Setenv("BLADEFALL_LOG_LEVEL", "debug")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/levels.yaml", e.ConfigPath)
	assert.Equal(t, 30, e.TickRate)
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, "debug", e.LogLevel)
	assert.Empty(t, e.LogFile)
}

func TestParseEnvErrors(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("BLADEFALL_SEED", "lots")
		_, err := ParseEnv()
		assert.Error(t, err)
	})

	t.Run("negative tick rate", func(t *testing.T) {
		t.Setenv("BLADEFALL_TICK_RATE", "-5")
		_, err := ParseEnv()
		assert.ErrorContains(t, err, "BLADEFALL_TICK_RATE")
	})
}

func TestEnvApply(t *testing.T) {
	cfg := DefaultBladefallConfig()

	assert.Equal(t, cfg, Env{}.Apply(cfg), "unset tick rate keeps the file value")
	assert.Equal(t, 45, Env{TickRate: 45}.Apply(cfg).TickRate)
}
