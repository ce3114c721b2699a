// Package engine composes the grid, light, mesher, pathfinder, and terrain
// packages into a single World: the orchestration layer a host embeds,
// owning every buffer the core operations read and write.
package engine

import (
	"voxelcore/internal/config"
	"voxelcore/internal/light"
	"voxelcore/internal/mesher"
	"voxelcore/internal/pathfind"
	"voxelcore/internal/profiling"
	"voxelcore/internal/registry"
	"voxelcore/internal/terrain"
	"voxelcore/internal/update"
	"voxelcore/internal/volume"
)

// World owns every caller-side buffer the core operations need: the voxel
// grid, its height map, its light field, and the scratch queues the light
// engine's BFS passes reuse across calls.
type World struct {
	Volume   volume.Volume
	Voxels   []byte
	Height   volume.HeightMap
	Light    light.Field
	Registry *registry.Registry

	coordinator update.Coordinator
	qa, qb, qc  []int32
}

// New allocates a World sized per cfg.Volume, with an empty block registry
// the caller populates before generating or editing.
func New(cfg *config.Config) *World {
	v := volume.Volume{
		Width:     cfg.Volume.Width,
		Height:    cfg.Volume.Height,
		Depth:     cfg.Volume.Depth,
		ChunkSize: cfg.Volume.ChunkSize,
		MaxLight:  uint8(cfg.Volume.MaxLight),
	}
	r := registry.New()
	w := &World{
		Volume:   v,
		Voxels:   make([]byte, v.CellCount()),
		Height:   volume.NewHeightMap(v),
		Light:    light.NewField(v, cfg.Volume.Channels),
		Registry: r,
		qa:       make([]int32, v.CellCount()),
		qb:       make([]int32, v.CellCount()),
		qc:       make([]int32, v.CellCount()),
	}
	w.coordinator = update.Coordinator{Emission: r.EmissionFunc()}
	return w
}

// Generate overwrites Voxels with fresh terrain and rebuilds the light
// field from scratch.
func (w *World) Generate(p terrain.Params) {
	clear(w.Voxels)
	terrain.Generate(w.Volume, w.Voxels, p)
	w.Propagate()
}

// Propagate rebuilds the height map and every light channel from the
// current voxel buffer.
func (w *World) Propagate() {
	clear(w.Light.Levels)
	light.Propagate(w.Volume, w.Voxels, w.Height, w.Light, w.Registry.EmissionFunc(), w.qa, w.qb)
}

// Update applies a single-cell edit and returns the minimal bounding box of
// every cell it touched.
func (w *World) Update(x, y, z int, newValue byte, updateLight bool) volume.Box {
	defer profiling.Track("engine.World.Update")()
	var bounds volume.Box
	w.coordinator.Update(&bounds, w.Volume, w.Voxels, w.Height, w.Light, w.qa, w.qc, x, y, z, newValue, updateLight)
	return bounds
}

// Mesh extracts the visible-face mesh for the chunk at (chunkX,chunkY,chunkZ).
func (w *World) Mesh(faces []float32, chunkX, chunkY, chunkZ int) (int, mesher.Box, mesher.Sphere) {
	return mesher.Mesh(w.Volume, w.Voxels, w.Light, w.Registry.Mapping, faces, chunkX, chunkY, chunkZ)
}

// FindPath runs the pathfinder between two points for an agent of the given
// height, writing the result into results (sized for at least
// maxVisited+1 triples).
func (w *World) FindPath(results []int, agentHeight, maxVisited, minY, maxY int, obstacles []byte, fromX, fromY, fromZ, toX, toY, toZ int) int {
	ctx := &pathfind.Context{
		Volume:     w.Volume,
		Voxels:     w.Voxels,
		Obstacles:  obstacles,
		Height:     agentHeight,
		MaxVisited: maxVisited,
		MinY:       minY,
		MaxY:       maxY,
	}
	return pathfind.FindPath(ctx, results, fromX, fromY, fromZ, toX, toY, toZ)
}

// Ground drops an agent of the given height from (x,y,z) and returns the y
// it comes to rest at.
func (w *World) Ground(height, x, y, z int) int {
	return pathfind.Ground(w.Volume, w.Voxels, height, x, y, z)
}
