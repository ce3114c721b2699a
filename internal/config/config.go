// Package config defines the tunable parameters a world instance needs to
// size its volume, shape its terrain, and bound its pathfinder, loadable
// from a YAML file the way a deployed world's settings would be.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures every tunable parameter needed to stand up a volume: its
// dimensions, its light budget, its terrain generator, and its pathfinder
// bounds.
type Config struct {
	Volume      VolumeConfig      `yaml:"volume"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
}

// VolumeConfig sizes the dense grid and its light budget.
type VolumeConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Depth     int `yaml:"depth"`
	ChunkSize int `yaml:"chunkSize"`
	MaxLight  int `yaml:"maxLight"`
	Channels  int `yaml:"channels"`
}

// TerrainConfig carries the fractal-noise parameters and block ids the
// generator uses to paint the initial voxel field.
type TerrainConfig struct {
	Seed        int64   `yaml:"seed"`
	Frequency   float64 `yaml:"frequency"`
	Gain        float64 `yaml:"gain"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Octaves     int     `yaml:"octaves"`
	GrassBlock  byte    `yaml:"grassBlock"`
	LightBlock  byte    `yaml:"lightBlock"`
	StoneBlockA byte    `yaml:"stoneBlockA"`
	StoneBlockB byte    `yaml:"stoneBlockB"`
}

// PathfindingConfig bounds every search the pathfinder runs.
type PathfindingConfig struct {
	AgentHeight int `yaml:"agentHeight"`
	MaxVisited  int `yaml:"maxVisited"`
	MinY        int `yaml:"minY"`
	MaxY        int `yaml:"maxY"`
}

// Default returns the configuration used when no file is supplied: a
// 64x64x64 volume with 4 light channels (sunlight + 3 emitters) at
// maxLight 15, and terrain/pathfinding parameters matched to it.
func Default() *Config {
	return &Config{
		Volume: VolumeConfig{
			Width: 64, Height: 64, Depth: 64,
			ChunkSize: 16, MaxLight: 15, Channels: 4,
		},
		Terrain: TerrainConfig{
			Seed: 1, Frequency: 1.0 / 64.0, Gain: 0.5, Lacunarity: 2.0, Octaves: 4,
			GrassBlock: 3, LightBlock: 4, StoneBlockA: 1, StoneBlockB: 2,
		},
		Pathfinding: PathfindingConfig{
			AgentHeight: 2, MaxVisited: 10000, MinY: 0, MaxY: 63,
		},
	}
}

// Load reads a YAML configuration file. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first structural problem found in the configuration.
func (c *Config) Validate() error {
	v := c.Volume
	if v.Width <= 0 || v.Height <= 0 || v.Depth <= 0 {
		return fmt.Errorf("volume dimensions must be positive, got %dx%dx%d", v.Width, v.Height, v.Depth)
	}
	if v.ChunkSize <= 0 {
		return fmt.Errorf("chunkSize must be positive, got %d", v.ChunkSize)
	}
	if v.MaxLight <= 0 || v.MaxLight > 255 {
		return fmt.Errorf("maxLight must be in (0,255], got %d", v.MaxLight)
	}
	if v.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", v.Channels)
	}
	p := c.Pathfinding
	if p.AgentHeight <= 0 {
		return fmt.Errorf("pathfinding.agentHeight must be positive, got %d", p.AgentHeight)
	}
	if p.MinY > p.MaxY {
		return fmt.Errorf("pathfinding.minY (%d) must not exceed maxY (%d)", p.MinY, p.MaxY)
	}
	return nil
}
