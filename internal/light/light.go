// Package light implements the bidirectional (flood / remove-and-refill)
// breadth-first light diffusion described for the voxel grid: an arbitrary
// number of independent channels, one of which (channel 0) is sunlight and
// attenuates asymmetrically against a height map.
package light

import (
	"voxelcore/internal/profiling"
	"voxelcore/internal/volume"
)

// Sunlight is the reserved index of the vertical daylight channel. All other
// channels are emitter channels with uniform attenuation.
const Sunlight = 0

// EmissionFunc reports which light channel a block value emits light on, or
// -1 if it emits none. Implementations are injected by the caller so a world
// instance can carry its own block palette without process-global state.
type EmissionFunc func(value byte) int

// Field is a caller-owned per-cell, per-channel level buffer. Levels are
// stored cell-major (channel varies fastest) so the mesher's 5-sample
// lookups, which need every channel for one cell, stay cache-local.
type Field struct {
	Channels int
	Levels   []uint8
}

// NewField allocates a Field sized for the given volume and channel count.
func NewField(v volume.Volume, channels int) Field {
	return Field{Channels: channels, Levels: make([]uint8, v.CellCount()*channels)}
}

// At returns the level of cell i on the given channel.
func (f Field) At(i, channel int) uint8 {
	return f.Levels[i*f.Channels+channel]
}

// Set stores the level of cell i on the given channel.
func (f Field) Set(i, channel int, level uint8) {
	f.Levels[i*f.Channels+channel] = level
}

// cost returns the attenuation charged for moving from a cell at the given
// level, in the given direction, on the given channel. Sunlight moving
// straight down from a maxLight cell costs zero: a vertical shaft of
// sunlight is lossless. Every other move costs one.
func cost(channel int, dir volume.Direction, level, maxLight uint8) uint8 {
	if channel == Sunlight && dir == volume.DirDown && level == maxLight {
		return 0
	}
	return 1
}

// FloodLight runs a BFS that raises light levels outward from seeds (cell
// indices whose level on channel has just been set or raised). It runs as
// an explicit loop over two alternating scratch queues rather than the
// recursive wave-by-wave formulation of the original engine, so a large
// volume never grows the call stack with the flood.
//
// bounds may be nil, meaning "do not track touched cells".
func FloodLight(bounds *volume.Box, channel int, v volume.Volume, voxels []byte, height volume.HeightMap, field Field, seeds, scratch []int32) {
	defer profiling.Track("light.FloodLight")()
	queue, next := seeds, scratch[:0]
	for len(queue) > 0 {
		next = next[:0]
		for _, idx := range queue {
			i := int(idx)
			level := field.At(i, channel)
			if level == 0 {
				continue
			}
			x, y, z := v.Decompose(i)
			for d := 0; d < 6; d++ {
				dir := volume.Direction(d)
				off := volume.Offsets[d]
				nx, ny, nz := x+off[0], y+off[1], z+off[2]
				neighbor := v.Index(nx, ny, nz)
				if neighbor == volume.OOB || voxels[neighbor] != 0 {
					continue
				}
				nl := level - cost(channel, dir, level, v.MaxLight)
				if field.At(neighbor, channel) >= nl {
					continue
				}
				if channel == Sunlight && dir != volume.DirDown && level == v.MaxLight &&
					ny > int(height[v.ColumnIndex(nx, nz)]) {
					continue
				}
				field.Set(neighbor, channel, nl)
				next = append(next, int32(neighbor))
				volume.Grow(bounds, nx, ny, nz)
			}
		}
		queue, next = next, queue
	}
}

// Seed pairs a cell index with the light level it held before it was
// zeroed, which RemoveLight needs to decide whether a neighbor depended on
// it.
type Seed struct {
	Index int32
	Level uint8
}

// RemoveLight runs a BFS that zeroes cells whose level depended on a source
// that was just dimmed or removed, collecting any surviving independent
// sources into floodQueue so FloodLight can repair the field afterward.
// RemoveLight returns the (possibly extended) floodQueue.
//
// seeds are (index, priorLevel) pairs for cells that just dropped to zero.
func RemoveLight(bounds *volume.Box, channel int, v volume.Volume, voxels []byte, height volume.HeightMap, field Field, seeds []Seed, scratch []Seed, floodQueue []int32) []int32 {
	defer profiling.Track("light.RemoveLight")()
	queue, next := seeds, scratch[:0]
	for len(queue) > 0 {
		next = next[:0]
		for _, seed := range queue {
			i := int(seed.Index)
			x, y, z := v.Decompose(i)
			for d := 0; d < 6; d++ {
				dir := volume.Direction(d)
				off := volume.Offsets[d]
				nx, ny, nz := x+off[0], y+off[1], z+off[2]
				neighbor := v.Index(nx, ny, nz)
				if neighbor == volume.OOB || voxels[neighbor] != 0 {
					continue
				}
				nl := field.At(neighbor, channel)
				if nl == 0 {
					continue
				}
				tearDown := nl < seed.Level ||
					(channel == Sunlight && dir == volume.DirDown && seed.Level == v.MaxLight && nl == v.MaxLight)
				if tearDown {
					next = append(next, Seed{Index: int32(neighbor), Level: nl})
					field.Set(neighbor, channel, 0)
					volume.Grow(bounds, nx, ny, nz)
				} else {
					floodQueue = append(floodQueue, int32(neighbor))
				}
			}
		}
		queue, next = next, queue
	}
	return floodQueue
}

// Propagate seeds and floods every channel across the whole volume: the
// height map is (re)computed, the topmost-row air cells are seeded at
// maxLight for sunlight, and every solid cell that emits on a channel is
// seeded at maxLight for that channel.
func Propagate(v volume.Volume, voxels []byte, height volume.HeightMap, field Field, emission EmissionFunc, qa, qb []int32) {
	defer profiling.Track("light.Propagate")()
	volume.RecomputeAll(v, voxels, height)

	for channel := 0; channel < field.Channels; channel++ {
		seeds := qa[:0]
		if channel == Sunlight {
			y := v.Height - 1
			for z := 0; z < v.Depth; z++ {
				for x := 0; x < v.Width; x++ {
					i := v.Index(x, y, z)
					if voxels[i] == 0 {
						field.Set(i, channel, v.MaxLight)
						seeds = append(seeds, int32(i))
					}
				}
			}
		} else {
			for i := 0; i < v.CellCount(); i++ {
				if voxels[i] == 0 {
					continue
				}
				if emission(voxels[i]) == channel {
					field.Set(i, channel, v.MaxLight)
					seeds = append(seeds, int32(i))
				}
			}
		}
		FloodLight(nil, channel, v, voxels, height, field, seeds, qb[:0])
	}
}
