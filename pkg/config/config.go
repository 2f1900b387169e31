// pkg/config/config.go
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a full arena scenario: the world extent, the simulation
// timing parameters, and the balls and walls to seed the engine with.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Balls      []BallConfig     `yaml:"balls"`
	Walls      []WallConfig     `yaml:"walls"`
}

// WorldConfig is the arena extent covered by the spatial index.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimulationConfig carries the engine timing parameters.
type SimulationConfig struct {
	StartTime  float64 `yaml:"start_time"`
	TargetTime float64 `yaml:"target_time"`
	SubStep    float64 `yaml:"sub_step"`
	TickRate   float64 `yaml:"tick_rate"` // driver ticks per second
}

// BallConfig seeds one ball.
type BallConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Speed     float64 `yaml:"speed"`
	Direction float64 `yaml:"direction"` // radians
	Radius    float64 `yaml:"radius"`
	Mass      float64 `yaml:"mass"`
}

// WallConfig seeds one wall. Neighbor references are indices into the wall
// list; -1 means the end grows into nothing.
type WallConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Size       float64 `yaml:"size"`
	GrowthRate float64 `yaml:"growth_rate"`
	Growing    bool    `yaml:"growing"`
	Target1X   float64 `yaml:"target1_x"`
	Target1Y   float64 `yaml:"target1_y"`
	Target2X   float64 `yaml:"target2_x"`
	Target2Y   float64 `yaml:"target2_y"`
	End1Into   int     `yaml:"end1_into"`
	End2Into   int     `yaml:"end2_into"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a scenario to a YAML file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the scenario for structural problems before any object is
// constructed.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Simulation.SubStep <= 0 {
		return fmt.Errorf("sub_step must be positive, got %g", c.Simulation.SubStep)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %g", c.Simulation.TickRate)
	}

	for i, ball := range c.Balls {
		if ball.Radius <= 0 {
			return fmt.Errorf("ball %d: radius must be positive, got %g", i, ball.Radius)
		}
		if ball.Speed < 0 {
			return fmt.Errorf("ball %d: speed must not be negative, got %g", i, ball.Speed)
		}
	}

	for i, wall := range c.Walls {
		if wall.Size <= 0 {
			return fmt.Errorf("wall %d: size must be positive, got %g", i, wall.Size)
		}
		if wall.Growing && wall.GrowthRate <= 0 {
			return fmt.Errorf("wall %d: growing wall requires a positive growth_rate, got %g", i, wall.GrowthRate)
		}
		for _, ref := range []int{wall.End1Into, wall.End2Into} {
			if ref != -1 && (ref < 0 || ref >= len(c.Walls)) {
				return fmt.Errorf("wall %d: neighbor index %d out of range", i, ref)
			}
		}
	}
	return nil
}

// Default returns a small demo scenario: three balls in a 1000x1000 arena
// with one horizontal wall growing from the center.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  1000,
			Height: 1000,
		},
		Simulation: SimulationConfig{
			StartTime:  0,
			TargetTime: 60,
			SubStep:    1.0 / 120.0,
			TickRate:   60,
		},
		Balls: []BallConfig{
			{X: 200, Y: 300, Speed: 40, Direction: math.Pi / 4, Radius: 8, Mass: 1},
			{X: 750, Y: 650, Speed: 55, Direction: 5 * math.Pi / 4, Radius: 8, Mass: 1},
			{X: 500, Y: 120, Speed: 35, Direction: math.Pi / 2, Radius: 12, Mass: 2},
		},
		Walls: []WallConfig{
			{
				StartX:     500,
				StartY:     500,
				Size:       4,
				GrowthRate: 25,
				Growing:    true,
				Target1X:   0,
				Target1Y:   500,
				Target2X:   1000,
				Target2Y:   500,
				End1Into:   -1,
				End2Into:   -1,
			},
		},
	}
}
