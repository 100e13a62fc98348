package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded BladefallConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &embedded))

	assert.Equal(t, DefaultBladefallConfig(), embedded)
	assert.NoError(t, embedded.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
tick_rate: 30
timing: {drop_delay: 2, next_level_delay: 10, game_over_delay: 1}
blade: {top_speed: 3}
levels:
  cycle:
    - obstacles: [{row: 4, tough: true}]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBladefall(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, uint8(2), cfg.Timing.DropDelay)
	require.Len(t, cfg.Levels.Cycle, 1)
	assert.True(t, cfg.Levels.Cycle[0].Obstacles[0].Tough)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBladefall(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("tick_rate: [oops"), 0o600))
	_, err = LoadBladefall(broken)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("tick_rate: 20\nblade: {top_speed: 4}\n"), 0o600))
	_, err = LoadBladefall(invalid)
	assert.ErrorContains(t, err, "levels.cycle")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BladefallConfig)
		wantErr string
	}{
		{"defaults", func(*BladefallConfig) {}, ""},
		{"zero tick rate", func(c *BladefallConfig) { c.TickRate = 0 }, "tick_rate"},
		{"stalled blade", func(c *BladefallConfig) { c.Blade.TopSpeed = 0 }, "top_speed"},
		{"row too low", func(c *BladefallConfig) { c.Levels.Fixed[0].Obstacles[0].Row = 0 }, "levels.fixed[0]"},
		{"row too high", func(c *BladefallConfig) { c.Levels.Cycle[1].Obstacles[0].Row = 22 }, "levels.cycle[1]"},
		{"long narrator line", func(c *BladefallConfig) {
			c.Narration[0].Lines = append(c.Narration[0].Lines, "this line is far too wide")
		}, "longer than"},
		{"non-ASCII narrator line", func(c *BladefallConfig) {
			c.Narration[0].Lines = append(c.Narration[0].Lines, "café")
		}, "outside ASCII"},
		{"control character", func(c *BladefallConfig) {
			c.Narration[0].Lines = append(c.Narration[0].Lines, "tab\there")
		}, "outside ASCII"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBladefallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestMarshalDefaults(t *testing.T) {
	data, err := Marshal(DefaultBladefallConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "next_level_delay: 18")
}
