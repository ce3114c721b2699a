package engine

import (
	"testing"

	"voxelcore/internal/config"
	"voxelcore/internal/registry"
	"voxelcore/internal/terrain"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Volume.Width, cfg.Volume.Height, cfg.Volume.Depth = 16, 16, 16
	return cfg
}

func TestWorldGenerateThenMeshProducesFaces(t *testing.T) {
	cfg := testConfig()
	w := New(cfg)
	w.Registry.Define(cfg.Terrain.StoneBlockA, registry.Block{Name: "stoneA", Texture: 1})
	w.Registry.Define(cfg.Terrain.StoneBlockB, registry.Block{Name: "stoneB", Texture: 2})

	w.Generate(terrain.Params{
		Seed: cfg.Terrain.Seed, Frequency: cfg.Terrain.Frequency, Gain: cfg.Terrain.Gain,
		Lacunarity: cfg.Terrain.Lacunarity, Octaves: cfg.Terrain.Octaves,
		StoneBlockA: cfg.Terrain.StoneBlockA, StoneBlockB: cfg.Terrain.StoneBlockB,
	})

	faces := make([]float32, w.Volume.ChunkSize*w.Volume.ChunkSize*w.Volume.ChunkSize*6*4+6*4)
	count, _, _ := w.Mesh(faces, 0, 0, 0)
	if count <= 0 {
		t.Fatalf("Mesh returned %d faces, want > 0", count)
	}
}

func TestWorldUpdateReportsBounds(t *testing.T) {
	cfg := testConfig()
	w := New(cfg)
	w.Propagate()

	box := w.Update(8, 8, 8, cfg.Terrain.StoneBlockA, true)
	if box.Min[0] > 8 || box.Max[0] < 8 {
		t.Errorf("bounds %+v do not contain the edited cell (8,8,8)", box)
	}
}

func TestWorldFindPathAndGround(t *testing.T) {
	cfg := testConfig()
	w := New(cfg)
	for x := 0; x < w.Volume.Width; x++ {
		for z := 0; z < w.Volume.Depth; z++ {
			w.Voxels[w.Volume.Index(x, 0, z)] = cfg.Terrain.StoneBlockA
		}
	}
	w.Propagate()

	results := make([]int, (cfg.Pathfinding.MaxVisited+1)*3)
	n := w.FindPath(results, cfg.Pathfinding.AgentHeight, cfg.Pathfinding.MaxVisited, 0, w.Volume.Height-1, nil, 1, 1, 1, 5, 1, 5)
	if n == 0 {
		t.Fatal("expected a path across flat ground")
	}

	if y := w.Ground(cfg.Pathfinding.AgentHeight, 2, 5, 2); y != 1 {
		t.Fatalf("Ground() = %d, want 1", y)
	}
}
