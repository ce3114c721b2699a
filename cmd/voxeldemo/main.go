// Command voxeldemo stands up a world, generates terrain, runs a sample
// edit and a sample path query, and logs the result. It exists to give the
// core packages a runnable entry point; it does not render anything.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"voxelcore/internal/config"
	"voxelcore/internal/engine"
	"voxelcore/internal/profiling"
	"voxelcore/internal/registry"
	"voxelcore/internal/terrain"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML world config (defaults to built-in defaults)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	profiling.ResetFrame()
	runStart := time.Now()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	w := engine.New(cfg)
	w.Registry.Define(cfg.Terrain.GrassBlock, registry.Block{Name: "grass", Texture: 1, Grass: true})
	w.Registry.Define(cfg.Terrain.LightBlock, registry.Block{Name: "glowstone", Texture: 2, Emits: 1, LightSrc: true})
	w.Registry.Define(cfg.Terrain.StoneBlockA, registry.Block{Name: "stone", Texture: 3})
	w.Registry.Define(cfg.Terrain.StoneBlockB, registry.Block{Name: "deepstone", Texture: 4})

	logger.Info("generating world",
		"width", cfg.Volume.Width, "height", cfg.Volume.Height, "depth", cfg.Volume.Depth,
		"seed", cfg.Terrain.Seed)
	w.Generate(terrain.Params{
		Seed:        cfg.Terrain.Seed,
		Frequency:   cfg.Terrain.Frequency,
		Gain:        cfg.Terrain.Gain,
		Lacunarity:  cfg.Terrain.Lacunarity,
		Octaves:     cfg.Terrain.Octaves,
		GrassBlock:  cfg.Terrain.GrassBlock,
		LightBlock:  cfg.Terrain.LightBlock,
		StoneBlockA: cfg.Terrain.StoneBlockA,
		StoneBlockB: cfg.Terrain.StoneBlockB,
	})

	cx, cy, cz := cfg.Volume.Width/2, cfg.Volume.Height/2, cfg.Volume.Depth/2
	groundY := w.Ground(cfg.Pathfinding.AgentHeight, cx, cy, cz)
	logger.Info("dropped agent to ground", "x", cx, "y", groundY, "z", cz)

	box := w.Update(cx, groundY+1, cz, cfg.Terrain.LightBlock, true)
	logger.Info("placed light block", "bounds_min", box.Min, "bounds_max", box.Max)

	faces := make([]float32, cfg.Volume.ChunkSize*cfg.Volume.ChunkSize*cfg.Volume.ChunkSize*6*(4+cfg.Volume.Channels))
	count, meshBox, sphere := w.Mesh(faces, 0, 0, 0)
	logger.Info("meshed origin chunk", "face_count", count, "box_min", meshBox.Min, "box_max", meshBox.Max,
		"sphere_radius", sphere.Radius)

	results := make([]int, (cfg.Pathfinding.MaxVisited+1)*3)
	n := w.FindPath(results, cfg.Pathfinding.AgentHeight, cfg.Pathfinding.MaxVisited,
		cfg.Pathfinding.MinY, cfg.Pathfinding.MaxY, nil,
		cx, groundY, cz, cx+4, groundY, cz+4)
	logger.Info("pathfind result", "node_count", n)

	profiling.Add("voxeldemo.total", time.Since(runStart))
	coreTime := profiling.SumWithPrefix("light.", "update.", "mesher.", "pathfind.", "terrain.", "engine.")
	logger.Info("profiling summary",
		"total", profiling.Total(),
		"core_subsystems", coreTime,
		"top", profiling.TopN(5))
}
