// Package update applies a single-cell voxel edit: it rewrites the voxel,
// rewires the height map, and drives the light field's flood/remove BFS so
// the grid stays consistent after arbitrary edits, reporting the minimal
// bounding box of everything it touched.
package update

import (
	"voxelcore/internal/light"
	"voxelcore/internal/profiling"
	"voxelcore/internal/volume"
)

// Coordinator holds the scratch queues an Update call needs. Queues are
// owned exclusively by the caller for the duration of a call and must each
// be sized to at least the volume's cell count, the same bound the light
// engine's own BFS relies on.
type Coordinator struct {
	Emission light.EmissionFunc
}

// Update applies voxels[x,y,z] = newValue. If updateLight is false the call
// stops after writing the voxel (no height-map or light-field work). bounds
// is reset to the degenerate box at (x,y,z) and grown with every touched
// cell; pass a non-nil pointer to collect it.
//
// qa and qc are scratch buffers reused across the removal and flood BFS
// passes; they may not alias each other or any buffer passed concurrently to
// another call on the same volume.
func (c Coordinator) Update(
	bounds *volume.Box,
	v volume.Volume,
	voxels []byte,
	height volume.HeightMap,
	field light.Field,
	qa, qc []int32,
	x, y, z int,
	newValue byte,
	updateLight bool,
) {
	defer profiling.Track("update.Update")()
	if bounds != nil {
		*bounds = volume.Degenerate(x, y, z)
	}

	i := v.Index(x, y, z)
	if i == volume.OOB {
		return
	}
	current := voxels[i]
	if current == newValue {
		return
	}
	voxels[i] = newValue

	if !updateLight {
		return
	}

	volume.UpdateOnEdit(height, v, voxels, x, y, z, newValue)

	// The old value's own emission is being replaced: tear down the light it
	// was the source of before anything reacts to the new value, or the
	// emitter's neighbors keep their derived light after the source is gone.
	if ch := c.Emission(current); ch > light.Sunlight {
		if level := field.At(i, ch); level != 0 {
			field.Set(i, ch, 0)
			runRemoval(bounds, ch, v, voxels, height, field, []light.Seed{{Index: int32(i), Level: level}}, qa, qc)
		}
	}

	// Newly solid: any channel that was lit at this cell loses its light,
	// and that loss must be torn down through the BFS.
	if newValue != 0 && current == 0 {
		for channel := 0; channel < field.Channels; channel++ {
			level := field.At(i, channel)
			if level == 0 {
				continue
			}
			field.Set(i, channel, 0)
			removalSeeds := []light.Seed{{Index: int32(i), Level: level}}
			runRemoval(bounds, channel, v, voxels, height, field, removalSeeds, qa, qc)
		}
	}

	// Newly emitting: seed a fresh flood from this cell on its channel.
	if newValue != 0 {
		if channel := c.Emission(newValue); channel > light.Sunlight {
			field.Set(i, channel, v.MaxLight)
			light.FloodLight(bounds, channel, v, voxels, height, field, []int32{int32(i)}, qa[:0])
		}
	}

	// Newly air: the cell is now transparent and must be refilled from
	// whichever of its neighbors are still lit, on every channel.
	if newValue == 0 && current != 0 {
		for channel := 0; channel < field.Channels; channel++ {
			seeds := qa[:0]
			for d := 0; d < 6; d++ {
				off := volume.Offsets[d]
				neighbor := v.Index(x+off[0], y+off[1], z+off[2])
				if neighbor != volume.OOB && field.At(neighbor, channel) != 0 {
					seeds = append(seeds, int32(neighbor))
				}
			}
			if len(seeds) > 0 {
				light.FloodLight(bounds, channel, v, voxels, height, field, seeds, qc[:0])
			}
		}
	}
}

// runRemoval tears down one channel's light starting from seeds (cells that
// just lost their source), then reflows anything that survived the teardown
// as an independent source. The removal scratch queue grows on demand: a
// single-cell edit rarely needs to stage more than a handful of seeds, so it
// isn't worth a caller-owned buffer the way the whole-volume flood queues are.
func runRemoval(bounds *volume.Box, channel int, v volume.Volume, voxels []byte, height volume.HeightMap, field light.Field, seeds []light.Seed, qa, qc []int32) {
	flood := light.RemoveLight(bounds, channel, v, voxels, height, field, seeds, nil, qc[:0])
	if len(flood) > 0 {
		light.FloodLight(bounds, channel, v, voxels, height, field, flood, qa[:0])
	}
}
