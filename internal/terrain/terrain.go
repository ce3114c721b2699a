// Package terrain fills a fresh voxel buffer from fractal noise: a
// noise-perturbed circular silhouette clipped to a cylindrical envelope,
// with optional grass and light-emitter surface decoration.
package terrain

import (
	"math"

	"voxelcore/internal/profiling"
	"voxelcore/internal/volume"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Params are the fractal parameters shaping the noise field. Frequency is
// the base sampling frequency; the auxiliary noise source (used to pick a
// block id and to decide light placement) samples at 4x Frequency.
type Params struct {
	Seed        int64
	Frequency   float64
	Gain        float64
	Lacunarity  float64
	Octaves     int
	GrassBlock  byte // 0 disables grass decoration
	LightBlock  byte // 0 disables light decoration
	StoneBlockA byte // picked when the auxiliary sample rounds to 1
	StoneBlockB byte // picked when the auxiliary sample rounds to 0
}

// fbm is a fractal-Brownian-motion wrapper around an opensimplex source,
// mirroring FastNoiseLite's FBM fractal type: each octave halves in
// amplitude (scaled by gain) and samples at lacunarity times the frequency
// of the octave before it.
type fbm struct {
	noise      opensimplex.Noise
	frequency  float64
	gain       float64
	lacunarity float64
	octaves    int
}

func newFBM(seed int64, frequency, gain, lacunarity float64, octaves int) fbm {
	return fbm{
		noise:      opensimplex.New(seed),
		frequency:  frequency,
		gain:       gain,
		lacunarity: lacunarity,
		octaves:    octaves,
	}
}

func (f fbm) sample3D(x, y, z float64) float64 {
	var sum, amplitude, freq float64 = 0, 1, f.frequency
	var norm float64
	for o := 0; o < f.octaves; o++ {
		sum += f.noise.Eval3(x*freq, y*freq, z*freq) * amplitude
		norm += amplitude
		amplitude *= f.gain
		freq *= f.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Generate fills voxels (sized for v.CellCount() bytes, already zeroed or
// about to be overwritten) with a cylindrical terrain silhouette: cells
// farther than radius from the volume's xz center stay air, and within the
// disc a cell is solid when it falls under the FBM-perturbed dome AND
// inside the noise-perturbed circular silhouette.
func Generate(v volume.Volume, voxels []byte, p Params) {
	defer profiling.Track("terrain.Generate")()

	base := newFBM(p.Seed, p.Frequency, p.Gain, p.Lacunarity, p.Octaves)
	aux := newFBM(p.Seed, p.Frequency*4, p.Gain, p.Lacunarity, p.Octaves)

	radius := math.Max(float64(v.Width), float64(v.Depth)) * 0.5
	centerX := float64(v.Width)*0.5 - 0.5
	centerZ := float64(v.Depth)*0.5 - 0.5

	for z := 0; z < v.Depth; z++ {
		for y := 0; y < v.Height; y++ {
			for x := 0; x < v.Width; x++ {
				i := v.Index(x, y, z)
				dx := float64(x) - centerX
				dz := float64(z) - centerZ
				d := math.Sqrt(dx*dx + dz*dz)
				if d > radius {
					continue
				}
				n := math.Abs(base.sample3D(float64(x), float64(y), float64(z)))
				if float64(y) < float64(v.Height-2)*n && d < radius*(0.8+0.2*n) {
					auxSample := math.Abs(aux.sample3D(float64(z), float64(x), float64(y)))
					if math.Round(auxSample) == 0 {
						voxels[i] = p.StoneBlockB
					} else {
						voxels[i] = p.StoneBlockA
					}
					continue
				}
				decorate(v, voxels, aux, p, x, y, z, i)
			}
		}
	}
}

// decorate paints grass on top of a freshly-exposed solid surface (the cell
// immediately below the current air cell) and occasionally fills the
// current air cell with StoneBlockB and places a light-emitting block one
// cell above that stone.
func decorate(v volume.Volume, voxels []byte, aux fbm, p Params, x, y, z, i int) {
	if p.GrassBlock == 0 && p.LightBlock == 0 {
		return
	}
	if y == 0 || voxels[i] != 0 {
		return
	}
	below := v.Index(x, y-1, z)
	if below == volume.OOB || voxels[below] != p.StoneBlockA && voxels[below] != p.StoneBlockB {
		return
	}
	if p.GrassBlock != 0 {
		voxels[below] = p.GrassBlock
	}
	if p.LightBlock != 0 && math.Abs(aux.sample3D(float64(z)*10, float64(x)*10, float64(y)*10)) > 0.98 {
		voxels[i] = p.StoneBlockB
		above := v.Index(x, y+1, z)
		if above != volume.OOB {
			voxels[above] = p.LightBlock
		}
	}
}
