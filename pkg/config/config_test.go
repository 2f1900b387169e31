// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float64(1000), cfg.World.Width)
	assert.Len(t, cfg.Balls, 3)
	assert.Len(t, cfg.Walls, 1)
	assert.True(t, cfg.Walls[0].Growing)
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, Save(Default(), path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutate := func(fn func(*Config)) *Config {
		cfg := Default()
		fn(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name:    "zero world width",
			cfg:     mutate(func(c *Config) { c.World.Width = 0 }),
			wantErr: "world dimensions",
		},
		{
			name:    "non-positive sub step",
			cfg:     mutate(func(c *Config) { c.Simulation.SubStep = 0 }),
			wantErr: "sub_step",
		},
		{
			name:    "non-positive tick rate",
			cfg:     mutate(func(c *Config) { c.Simulation.TickRate = -1 }),
			wantErr: "tick_rate",
		},
		{
			name:    "ball with zero radius",
			cfg:     mutate(func(c *Config) { c.Balls[0].Radius = 0 }),
			wantErr: "radius",
		},
		{
			name:    "ball with negative speed",
			cfg:     mutate(func(c *Config) { c.Balls[0].Speed = -1 }),
			wantErr: "speed",
		},
		{
			name:    "wall with zero size",
			cfg:     mutate(func(c *Config) { c.Walls[0].Size = 0 }),
			wantErr: "size",
		},
		{
			name:    "growing wall without a rate",
			cfg:     mutate(func(c *Config) { c.Walls[0].GrowthRate = 0 }),
			wantErr: "growth_rate",
		},
		{
			name:    "neighbor index out of range",
			cfg:     mutate(func(c *Config) { c.Walls[0].End1Into = 5 }),
			wantErr: "neighbor index",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
