package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadReadsYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	const doc = `
volume:
  width: 32
  height: 32
  depth: 32
  chunkSize: 16
  maxLight: 15
  channels: 4
terrain:
  seed: 99
  frequency: 0.01
  gain: 0.5
  lacunarity: 2.0
  octaves: 3
pathfinding:
  agentHeight: 2
  maxVisited: 5000
  minY: 0
  maxY: 31
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 32, cfg.Volume.Width)
	require.Equal(t, int64(99), cfg.Terrain.Seed)
	require.Equal(t, 5000, cfg.Pathfinding.MaxVisited)
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	cfg := Default()
	cfg.Volume.Width = 0
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsInvertedPathBounds(t *testing.T) {
	cfg := Default()
	cfg.Pathfinding.MinY = 10
	cfg.Pathfinding.MaxY = 5
	require.Error(t, cfg.Validate())
}

func TestRuntimeSettingsToggle(t *testing.T) {
	SetProfilingEnabled(false)
	got := ToggleProfilingEnabled()
	require.True(t, got)
	require.True(t, GetProfilingEnabled())
	SetProfilingEnabled(false)
}
